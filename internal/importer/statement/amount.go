package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseStatementAmount parses an amount string into cents, accepting both
// US ("1,234.56") and European ("1.234,56") formats. Currency symbols and
// surrounding whitespace are stripped.
func parseStatementAmount(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.TrimPrefix(clean, "€")

	lastComma := strings.LastIndexByte(clean, ',')
	lastDot := strings.LastIndexByte(clean, '.')

	if lastComma > lastDot {
		// European: dots are thousands separators, comma is decimal.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		// US: commas are thousands separators.
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
