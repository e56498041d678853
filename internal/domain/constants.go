package domain

// Типы сущностей
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeMob    = "MOB"
)

// Параметры восприятия
const (
	VisionRadius = 8
)

// Цвета по умолчанию (0xRRGGBB)
const (
	ColorPlayer = 0x22D3EE
	ColorMob    = 0xDC2626
	ColorCorpse = 0x6B7280
)

// Маркеры останков на карте
const (
	CorpseCharMob    = 'X'
	CorpseCharPlayer = '%'
)

// MaxLogHistory — сколько последних записей хранит игровой лог.
const MaxLogHistory = 50
