package lock

import "math/rand"

// jitter возвращает value, рассыпанное на случайный процент в пределах
// [1-minPercent, 1+maxPercent]. Разброс интервала опроса уменьшает вероятность того,
// что несколько ожидающих будут стучаться в redis синхронно.
//
// minPercent и maxPercent должны быть >= 0 (0.1 = 10%). Если указано иное, значение выставится в 0.15.
func jitter(value, minPercent, maxPercent float64) float64 {
	if minPercent < 0 || maxPercent < 0 {
		minPercent = 0.15
		maxPercent = 0.15
	}
	factor := 1 - minPercent + rand.Float64()*(minPercent+maxPercent) // nolint:gosec
	return value * factor
}
