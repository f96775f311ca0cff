package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// bengaliZero is U+09E6 BENGALI DIGIT ZERO; the ten digits are contiguous.
const bengaliZero = '০'

// Digits replaces every ASCII digit in s with its Bengali counterpart.
// All other runes are left untouched.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return bengaliZero + (r - '0')
		}
		return r
	}, s)
}

// Number formats n in base 10 using Bengali digits.
func Number(n int) string {
	return Digits(strconv.Itoa(n))
}

// Padded formats n with at least two Bengali digits (used for clock times).
func Padded(n int) string {
	return Digits(fmt.Sprintf("%02d", n))
}

// ASCIIDigits is the inverse of Digits.
func ASCIIDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= bengaliZero && r <= bengaliZero+9 {
			return '0' + (r - bengaliZero)
		}
		return r
	}, s)
}

// ParseDigits parses an integer written with Bengali (or ASCII) digits.
func ParseDigits(s string) (int, error) {
	n, err := strconv.Atoi(ASCIIDigits(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("parsing bengali number %q: %w", s, err)
	}
	return n, nil
}
