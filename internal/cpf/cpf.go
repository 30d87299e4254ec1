// Package cpf validates and formats Brazilian individual taxpayer numbers.
//
// A CPF has 11 digits; the last two are check digits computed with a
// weighted sum modulo 11 over the preceding digits.
package cpf

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Length is the number of digits in a CPF.
	Length = 11

	baseLength = Length - 2
)

// ErrInvalid is returned when a CPF fails validation.
var ErrInvalid = errors.New("invalid CPF")

// Normalize strips every non-digit character.
func Normalize(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether cpf, after stripping punctuation, has 11 digits,
// is not a single repeated digit and carries matching check digits.
func Validate(cpf string) bool {
	digits := Normalize(cpf)
	if len(digits) != Length || repeated(digits) {
		return false
	}

	d1, d2, err := CheckDigits(digits[:baseLength])
	if err != nil {
		return false
	}
	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// CheckDigits computes the two check digits for the first nine digits of a CPF.
func CheckDigits(base string) (d1, d2 int, err error) {
	if len(base) != baseLength {
		return 0, 0, fmt.Errorf("%w: base must have %d digits, got %d", ErrInvalid, baseLength, len(base))
	}
	for i := 0; i < len(base); i++ {
		if base[i] < '0' || base[i] > '9' {
			return 0, 0, fmt.Errorf("%w: non-digit %q at position %d", ErrInvalid, base[i], i)
		}
	}

	d1 = checkDigit(base)
	d2 = checkDigit(base + string(rune('0'+d1)))
	return d1, d2, nil
}

// Format returns cpf in the XXX.XXX.XXX-XX mask. The input must be valid.
func Format(cpf string) (string, error) {
	if !Validate(cpf) {
		return "", fmt.Errorf("%w: %q", ErrInvalid, cpf)
	}
	d := Normalize(cpf)
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11], nil
}

// checkDigit weighs the digits from len(digits)+1 down to 2.
func checkDigit(digits string) int {
	sum := 0
	weight := len(digits) + 1
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest
}

func repeated(digits string) bool {
	return strings.Count(digits, digits[:1]) == len(digits)
}
