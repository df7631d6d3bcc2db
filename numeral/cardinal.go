// Package numeral spells non-negative integers as Russian cardinal numerals.
package numeral

import (
	"errors"
	"fmt"
	"strings"
)

// Max is the largest number Cardinal accepts.
const Max int64 = 100_000_000_000

// ErrOutOfRange is returned for negative numbers and numbers above Max.
var ErrOutOfRange = errors.New("numeral: out of range")

var (
	unitsMasc = [...]string{"", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	unitsFemn = [...]string{"", "одна", "две", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"}
	teens     = [...]string{"десять", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать",
		"пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"}
	tens = [...]string{"", "", "двадцать", "тридцать", "сорок", "пятьдесят",
		"шестьдесят", "семьдесят", "восемьдесят", "девяносто"}
	hundreds = [...]string{"", "сто", "двести", "триста", "четыреста", "пятьсот",
		"шестьсот", "семьсот", "восемьсот", "девятьсот"}
)

// scale is a power of a thousand with its one/few/many forms.
type scale struct {
	feminine bool
	forms    [3]string
}

// scales are ordered from units upwards.
var scales = [...]scale{
	{},
	{feminine: true, forms: [3]string{"тысяча", "тысячи", "тысяч"}},
	{forms: [3]string{"миллион", "миллиона", "миллионов"}},
	{forms: [3]string{"миллиард", "миллиарда", "миллиардов"}},
}

// Cardinal returns the cardinal numeral for n, e.g. 1100000 →
// "один миллион сто тысяч".
func Cardinal(n int64) (string, error) {
	if n < 0 || n > Max {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if n == 0 {
		return "ноль", nil
	}

	var triads []int
	for ; n > 0; n /= 1000 {
		triads = append(triads, int(n%1000))
	}

	var words []string
	for i := len(triads) - 1; i >= 0; i-- {
		t := triads[i]
		if t == 0 {
			continue
		}
		words = append(words, triad(t, scales[i].feminine)...)
		if i > 0 {
			words = append(words, scales[i].forms[Plural(t)])
		}
	}
	return strings.Join(words, " "), nil
}

// Plural returns the index of the form a noun takes after n:
// 0 for "один", 1 for "два"–"четыре", 2 otherwise.
func Plural(n int) int {
	if n < 0 {
		n = -n
	}
	switch {
	case n%100 >= 11 && n%100 <= 14:
		return 2
	case n%10 == 1:
		return 0
	case n%10 >= 2 && n%10 <= 4:
		return 1
	default:
		return 2
	}
}

// triad spells 1..999.
func triad(n int, feminine bool) []string {
	var words []string
	if h := n / 100; h > 0 {
		words = append(words, hundreds[h])
	}
	rest := n % 100
	switch {
	case rest >= 10 && rest < 20:
		words = append(words, teens[rest-10])
	default:
		if d := rest / 10; d > 0 {
			words = append(words, tens[d])
		}
		if u := rest % 10; u > 0 {
			if feminine {
				words = append(words, unitsFemn[u])
			} else {
				words = append(words, unitsMasc[u])
			}
		}
	}
	return words
}
