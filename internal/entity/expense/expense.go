package expense

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	DefaultCurrency = "USD"
	DefaultStore    = "Other"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Record is a single user-entered expense. Records are immutable after
// creation and removed only by explicit deletion.
type Record struct {
	ID       string
	Name     string
	Category Category
	Amount   float64
	Currency string
	Date     time.Time
	Store    string
	Details  string
}

// NewRecord creates a record with a fresh id and the documented defaults
// for unset fields. Amount must already be validated by ParseAmount.
func NewRecord(name string, category Category, amount float64) Record {
	return Record{
		ID:       uuid.NewString(),
		Name:     name,
		Category: category,
		Amount:   amount,
		Currency: DefaultCurrency,
		Date:     time.Now(),
		Store:    DefaultStore,
	}
}

// ParseAmount parses a user-entered amount string. Whitespace is trimmed
// and a decimal comma is normalized to a decimal point before parsing.
// Non-numeric and non-finite inputs are rejected.
func ParseAmount(text string) (float64, error) {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, ",", ".")

	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidAmount, "parse amount")
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errors.Wrap(ErrInvalidAmount, "parse amount")
	}
	return amount, nil
}
