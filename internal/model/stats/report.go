package stats

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"max.ks1230/expenses-tracker/internal/entity/expense"
)

// topStores caps the store breakdown; everything beyond the cap collapses
// into a single slice labeled otherLabel.
const (
	topStores  = 8
	otherLabel = "Other"
)

type recordSource interface {
	Records() []expense.Record
}

// Reporter produces summaries and trends over the record collection.
// All aggregation is pure grouping and summation; records never leave
// memory.
type Reporter struct {
	source recordSource
	nowFn  func() time.Time
}

func NewReporter(source recordSource) *Reporter {
	return &Reporter{
		source: source,
		nowFn:  time.Now,
	}
}

// CurrencyTotal is the sum and count of records sharing a currency.
type CurrencyTotal struct {
	Currency string
	Amount   float64
	Count    int
}

// Slice is one labeled share of a breakdown.
type Slice struct {
	Label  string
	Amount float64
}

// Summary is everything the selected window aggregates to.
type Summary struct {
	Window     Window
	Totals     []CurrencyTotal
	Stores     []Slice
	Categories []Slice
	TimeOfDay  []Slice
}

// Summarize filters the collection to [window start, now] and groups the
// result by currency, store, category and time of day.
func (r *Reporter) Summarize(window Window) (*Summary, error) {
	at := r.nowFn()
	start, err := window.Start(at)
	if err != nil {
		return nil, errors.Wrap(err, "summarize")
	}

	records := filterBetween(r.source.Records(), start, at)
	return &Summary{
		Window:     window,
		Totals:     totalsByCurrency(records),
		Stores:     topStoreSlices(records),
		Categories: categorySlices(records),
		TimeOfDay:  timeOfDaySlices(records),
	}, nil
}

func filterBetween(records []expense.Record, from, to time.Time) []expense.Record {
	res := make([]expense.Record, 0, len(records))
	for _, rec := range records {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		res = append(res, rec)
	}
	return res
}

func totalsByCurrency(records []expense.Record) []CurrencyTotal {
	amounts := make(map[string]float64)
	counts := make(map[string]int)
	for _, rec := range records {
		amounts[rec.Currency] += rec.Amount
		counts[rec.Currency]++
	}

	res := make([]CurrencyTotal, 0, len(amounts))
	for curr, amount := range amounts {
		res = append(res, CurrencyTotal{Currency: curr, Amount: amount, Count: counts[curr]})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount != res[j].Amount {
			return res[i].Amount > res[j].Amount
		}
		return res[i].Currency < res[j].Currency
	})
	return res
}

func topStoreSlices(records []expense.Record) []Slice {
	slices := groupSlices(records, func(rec expense.Record) string {
		return rec.Store
	})
	if len(slices) <= topStores {
		return slices
	}

	other := Slice{Label: otherLabel}
	for _, s := range slices[topStores:] {
		other.Amount += s.Amount
	}
	return append(slices[:topStores:topStores], other)
}

func categorySlices(records []expense.Record) []Slice {
	return groupSlices(records, func(rec expense.Record) string {
		return rec.Category.String()
	})
}

// groupSlices sums amounts per key and orders slices by amount
// descending, ties broken by label ascending.
func groupSlices(records []expense.Record, key func(expense.Record) string) []Slice {
	sums := make(map[string]float64)
	for _, rec := range records {
		sums[key(rec)] += rec.Amount
	}

	res := make([]Slice, 0, len(sums))
	for label, amount := range sums {
		res = append(res, Slice{Label: label, Amount: amount})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount != res[j].Amount {
			return res[i].Amount > res[j].Amount
		}
		return res[i].Label < res[j].Label
	})
	return res
}

// dayParts are the five fixed hour-of-day buckets covering 24 hours.
var dayParts = []struct {
	name string
	from int // inclusive hour
	to   int // exclusive hour
}{
	{"Night", 0, 6},
	{"Morning", 6, 12},
	{"Afternoon", 12, 17},
	{"Evening", 17, 21},
	{"Late night", 21, 24},
}

// timeOfDaySlices sums amounts per day part in chronological bucket
// order. Buckets that sum to zero are not emitted.
func timeOfDaySlices(records []expense.Record) []Slice {
	sums := make([]float64, len(dayParts))
	for _, rec := range records {
		hour := rec.Date.Hour()
		for i, part := range dayParts {
			if hour >= part.from && hour < part.to {
				sums[i] += rec.Amount
				break
			}
		}
	}

	res := make([]Slice, 0, len(dayParts))
	for i, part := range dayParts {
		if sums[i] == 0 {
			continue
		}
		res = append(res, Slice{Label: part.name, Amount: sums[i]})
	}
	return res
}
