// Package money содержит конвертацию денежных сумм для платежного провайдера.
package money

import "math"

// ToKopecks конвертирует сумму в основных единицах валюты (рублях)
// в целое число копеек для провайдера. Округление — арифметическое,
// половина вверх (round-half-up); функция чистая и детерминированная.
func ToKopecks(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
