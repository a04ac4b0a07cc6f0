// Package format holds the pure helpers used when rendering a shoe card:
// price text, pluralized counts and the new-release check.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecencyWindow is how long after its release a shoe counts as new
const RecencyWindow = 30 * 24 * time.Hour

// Price renders a dollar amount rounded to cents. Whole amounts drop the
// cents ("$110"), fractional ones keep two digits ("$89.50").
func Price(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$—"
	}

	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()

	out := sign + "$" + groupThousands(whole.String())
	if cents != 0 {
		out += fmt.Sprintf(".%02d", cents)
	}
	return out
}

// groupThousands inserts commas into a string of decimal digits. It works
// on the digit string so amounts past the int64 range keep every digit.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var sb strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	sb.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		sb.WriteByte(',')
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

// Pluralize returns "1 Color" for a count of exactly one and "n Colors" otherwise
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// IsNewRelease reports whether release happened less than RecencyWindow
// before now. Instants are compared, so the zones of the two values do not
// matter. Release dates in the future count as new.
func IsNewRelease(release, now time.Time) bool {
	return now.Sub(release) < RecencyWindow
}
