package engine

import "time"

// Config - параметры запуска движка.
type Config struct {
	// Seed инициализирует генератор случайных чисел сессии.
	// Одинаковый seed дает воспроизводимую партию.
	Seed int64
}

// NewConfig создает конфиг со случайным seed.
func NewConfig() *Config {
	return &Config{
		Seed: time.Now().UnixNano(),
	}
}
