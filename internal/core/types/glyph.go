package types

import (
	"fmt"
)

// Glyph — упакованное представление цветного символа.
// Использует 32 бита (uint32) в формате:
//
//	[0:8]  - символ (8 бит) - маска 0xFF
//	[8:32] - RGB-цвет (24 бита) - маска 0xFFFFFF
type Glyph uint32

const (
	bitsChar  = 8  // Символ - 8 бит (0-255)
	bitsColor = 24 // Цвет - 24 бита (RGB)

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph создает новый Glyph из RGB-цвета (0xRRGGBB, младшие 24 бита)
// и ASCII символа (младшие 8 бит).
//
// Пример:
//
//	glyph := MakeGlyph(0xFFA500, 'A') // Оранжевая буква 'A'
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Char извлекает символ из Glyph.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Color извлекает 24-битный RGB-цвет из Glyph в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// WithChar возвращает глиф с заменённым символом и прежним цветом.
// Используется для маркеров останков.
func (g Glyph) WithChar(char byte) Glyph {
	return MakeGlyph(g.Color(), char)
}

// HexColor возвращает строковое HEX-представление цвета (например, "#00FF00").
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// String возвращает человеко-читаемое представление Glyph.
// Реализует интерфейс fmt.Stringer.
// Формат: "Glyph{char='A', color=#FFA500}"
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}
