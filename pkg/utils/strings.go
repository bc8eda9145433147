package utils

import "strings"

// DigitsOnly membuang semua karakter selain 0-9.
func DigitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Truncate memotong s menjadi paling banyak n byte.
func Truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
