package accounting

import (
	"strings"
	"unicode"
)

// SplitByCasing inserts a space before every upper-case letter except the first rune,
// turning chart-of-accounts identifiers such as "BankCharges" into "Bank Charges".
func SplitByCasing(input string) string {
	var b strings.Builder
	b.Grow(len(input) + 4)
	for _, r := range input {
		if unicode.IsUpper(r) && b.Len() > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
