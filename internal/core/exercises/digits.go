package exercises

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/drills/internal/core/domain/drill"
)

// ContainsDigit reports whether the decimal form of any element's absolute
// value contains digit. The minus sign is never treated as a digit.
// It returns drill.ErrInvalidDomain when digit is outside 0..9.
func ContainsDigit[T drill.Integer](items []T, digit int) (bool, error) {
	d, err := digitRune(digit)
	if err != nil {
		return false, err
	}
	for _, v := range items {
		if strings.ContainsRune(absDecimal(v), d) {
			return true, nil
		}
	}
	return false, nil
}

// ContainsDigitSet is ContainsDigit with the decimal forms deduplicated
// through a set before scanning. Useful when items repeat heavily.
func ContainsDigitSet[T drill.Integer](items []T, digit int) (bool, error) {
	d, err := digitRune(digit)
	if err != nil {
		return false, err
	}
	unique := make(map[string]struct{}, len(items))
	for _, v := range items {
		unique[absDecimal(v)] = struct{}{}
	}
	for s := range unique {
		if strings.ContainsRune(s, d) {
			return true, nil
		}
	}
	return false, nil
}

// Verdict renders the outcome of a digit search as a short message.
func Verdict(found bool, digit int) string {
	if found {
		return "Oops!!"
	}
	return fmt.Sprintf("No %d here!", digit)
}

func digitRune(digit int) (rune, error) {
	if digit < 0 || digit > 9 {
		return 0, fmt.Errorf("%w: digit must be between 0 and 9, got %d", drill.ErrInvalidDomain, digit)
	}
	return rune('0' + digit), nil
}

// absDecimal formats v in base 10 without a sign. The minimum signed value is
// handled by formatting first and trimming, since its negation overflows.
func absDecimal[T drill.Integer](v T) string {
	var zero T
	if ^zero < 0 {
		return strings.TrimPrefix(strconv.FormatInt(int64(v), 10), "-")
	}
	return strconv.FormatUint(uint64(v), 10)
}
