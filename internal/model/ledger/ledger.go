package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expenses-tracker/internal/entity/expense"
	"max.ks1230/expenses-tracker/internal/logger"
)

// itemsKey is the single settings entry holding the whole collection.
const itemsKey = "Items"

// nowFn is swapped out in tests.
var nowFn = time.Now

// SettingsStorage is the local key-value settings store the collection
// is mirrored into.
type SettingsStorage interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

type config interface {
	DefaultCurrency() string
	PlaceholderStore() string
}

// Ledger owns the record collection for the session. The in-memory state
// is authoritative; the collection is mirrored to settings storage as a
// whole on every mutation, and persistence failures are logged and
// swallowed.
type Ledger struct {
	storage  SettingsStorage
	defaults config
	records  []expense.Record
}

func New(storage SettingsStorage, defaults config) *Ledger {
	return &Ledger{
		storage:  storage,
		defaults: defaults,
		records:  make([]expense.Record, 0),
	}
}

// Load reads the persisted collection. Missing or corrupt data is not an
// error condition: the ledger starts empty and says so in the log.
func (l *Ledger) Load(ctx context.Context) {
	raw, ok, err := l.storage.Get(ctx, itemsKey)
	if err != nil || !ok {
		if err != nil {
			logger.Warn("cannot read saved expenses, starting empty", zap.Error(err))
		}
		l.records = make([]expense.Record, 0)
		return
	}

	decoded, err := decodeItems(raw, l.defaults, nowFn())
	if err != nil {
		logger.Warn("saved expenses are corrupt, starting empty", zap.Error(err))
		l.records = make([]expense.Record, 0)
		return
	}

	l.records = make([]expense.Record, 0, len(decoded))
	repaired := 0
	for _, d := range decoded {
		if d.Defaulted {
			repaired++
		}
		l.records = append(l.records, d.Record)
	}
	if repaired > 0 {
		logger.Info("loaded expenses with defaulted fields",
			zap.Int("total", len(l.records)), zap.Int("defaulted", repaired))
	}
}

// AddRecord appends a record and persists the collection.
func (l *Ledger) AddRecord(ctx context.Context, rec expense.Record) {
	l.records = append(l.records, rec)
	l.persist(ctx)
}

// DeleteRecords removes the records at the given indices of the
// date-descending view returned by Records. Remaining records keep their
// relative order. Out-of-range indices leave the collection untouched.
func (l *Ledger) DeleteRecords(ctx context.Context, indices []int) error {
	view := l.Records()

	doomed := make(map[string]struct{}, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(view) {
			return errors.Wrap(fmt.Errorf("index %d out of range", i), "delete records")
		}
		doomed[view[i].ID] = struct{}{}
	}

	kept := l.records[:0]
	for _, rec := range l.records {
		if _, ok := doomed[rec.ID]; !ok {
			kept = append(kept, rec)
		}
	}
	l.records = kept
	l.persist(ctx)
	return nil
}

// Records returns the collection sorted by date descending. Records with
// equal dates keep their insertion order.
func (l *Ledger) Records() []expense.Record {
	view := make([]expense.Record, len(l.records))
	copy(view, l.records)
	sort.SliceStable(view, func(i, j int) bool {
		return view[i].Date.After(view[j].Date)
	})
	return view
}

func (l *Ledger) Len() int {
	return len(l.records)
}

func (l *Ledger) persist(ctx context.Context) {
	raw, err := encodeItems(l.records)
	if err != nil {
		logger.Error("cannot encode expenses", zap.Error(err))
		return
	}
	if err = l.storage.Set(ctx, itemsKey, raw); err != nil {
		logger.Error("cannot persist expenses", zap.Error(err))
	}
}

func newRecordID() string {
	return uuid.NewString()
}
