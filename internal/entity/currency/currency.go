package currency

import "strings"

const (
	USD = "USD"
	EUR = "EUR"
	GBP = "GBP"
	JPY = "JPY"
)

var Currencies = []string{USD, EUR, GBP, JPY}

// Normalize uppercases a user-entered currency code and substitutes
// def when the input is empty. Unknown codes are accepted as-is.
func Normalize(code, def string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def
	}
	return code
}
