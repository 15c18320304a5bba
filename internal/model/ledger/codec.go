package ledger

import (
	"encoding/json"
	"math"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expenses-tracker/internal/entity/currency"
	"max.ks1230/expenses-tracker/internal/entity/expense"
)

// wireRecord is the persisted shape of a record. The category travels
// under the legacy "type" key so previously saved data keeps loading.
// Every field except name and amount is optional; decoding fills the
// documented defaults for anything absent.
type wireRecord struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Amount   float64    `json:"amount"`
	Currency *string    `json:"currency,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Store    *string    `json:"store,omitempty"`
	Details  *string    `json:"details,omitempty"`
}

// DecodedRecord is the result of decoding one persisted record.
// Defaulted reports whether any absent field was filled with a default,
// so callers can tell a clean decode from a repaired one.
type DecodedRecord struct {
	Record    expense.Record
	Defaulted bool
}

func decodeItems(raw []byte, defaults config, now time.Time) ([]DecodedRecord, error) {
	var wire []wireRecord
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errors.Wrap(err, "decode items")
	}

	res := make([]DecodedRecord, 0, len(wire))
	for _, w := range wire {
		res = append(res, decodeRecord(w, defaults, now))
	}
	return res, nil
}

func decodeRecord(w wireRecord, defaults config, now time.Time) DecodedRecord {
	rec := expense.Record{
		ID:       w.ID,
		Name:     w.Name,
		Category: expense.ParseCategory(w.Type),
		Amount:   w.Amount,
	}
	defaulted := false

	if rec.ID == "" {
		rec.ID = newRecordID()
		defaulted = true
	}
	if w.Currency != nil {
		rec.Currency = currency.Normalize(*w.Currency, defaults.DefaultCurrency())
	} else {
		rec.Currency = defaults.DefaultCurrency()
		defaulted = true
	}
	if w.Date != nil {
		rec.Date = *w.Date
	} else {
		rec.Date = now
		defaulted = true
	}
	if w.Store != nil && *w.Store != "" {
		rec.Store = *w.Store
	} else {
		rec.Store = defaults.PlaceholderStore()
		defaulted = true
	}
	if w.Details != nil {
		rec.Details = *w.Details
	} else {
		defaulted = true
	}
	if math.IsNaN(rec.Amount) || math.IsInf(rec.Amount, 0) {
		rec.Amount = 0
		defaulted = true
	}

	return DecodedRecord{Record: rec, Defaulted: defaulted}
}

func encodeItems(records []expense.Record) ([]byte, error) {
	wire := make([]wireRecord, 0, len(records))
	for _, rec := range records {
		rec := rec
		wire = append(wire, wireRecord{
			ID:       rec.ID,
			Name:     rec.Name,
			Type:     rec.Category.String(),
			Amount:   rec.Amount,
			Currency: &rec.Currency,
			Date:     &rec.Date,
			Store:    &rec.Store,
			Details:  &rec.Details,
		})
	}
	raw, err := json.Marshal(wire)
	return raw, errors.Wrap(err, "encode items")
}
