package domain

import (
	"math/rand/v2"
	"strings"
)

const (
	vinLetters = 6
	vinDigits  = 10

	// VINLength - полная длина VIN: буквы + цифры
	VINLength = vinLetters + vinDigits
)

// Car - автомобиль клиента
type Car struct {
	VIN   string `json:"vin"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Ownership - связь клиент-автомобиль (таблица owns)
// Одна запись на каждую созданную пару (клиент, автомобиль)
type Ownership struct {
	ID         int    `json:"ownership_id"`
	CustomerID int    `json:"customer_id"`
	VIN        string `json:"vin"`
}

// GenerateVIN генерирует случайный VIN: 6 заглавных латинских букв и 10 цифр,
// первая цифра никогда не бывает '0'.
// Уникальность не гарантируется - ее проверяет вызывающий код.
func GenerateVIN(rng *rand.Rand) string {
	var b strings.Builder
	b.Grow(VINLength)

	for i := 0; i < vinLetters; i++ {
		b.WriteByte(byte('A' + rng.IntN(26)))
	}

	b.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < vinDigits; i++ {
		b.WriteByte(byte('0' + rng.IntN(10)))
	}

	return b.String()
}

// IsValidVIN проверяет формат VIN, который выдает GenerateVIN
func IsValidVIN(vin string) bool {
	if len(vin) != VINLength {
		return false
	}
	for i := 0; i < vinLetters; i++ {
		if vin[i] < 'A' || vin[i] > 'Z' {
			return false
		}
	}
	if vin[vinLetters] == '0' {
		return false
	}
	for i := vinLetters; i < VINLength; i++ {
		if vin[i] < '0' || vin[i] > '9' {
			return false
		}
	}
	return true
}

// Validate проверяет корректность данных автомобиля
func (c *Car) Validate() error {
	if !IsValidVIN(c.VIN) {
		return ErrInvalidVIN
	}
	return nil
}
