package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

// Window selects the records feeding a summary: either a fixed number of
// trailing days or the current calendar period. Calendar weeks start on
// Monday.
type Window string

const (
	Last7Days   Window = "7days"
	Last30Days  Window = "30days"
	Last365Days Window = "365days"
	ThisWeek    Window = "week"
	ThisMonth   Window = "month"
	ThisYear    Window = "year"
)

type windowStart func(at time.Time) time.Time

var windowStarts = map[Window]windowStart{
	Last7Days:   func(at time.Time) time.Time { return at.AddDate(0, 0, -7) },
	Last30Days:  func(at time.Time) time.Time { return at.AddDate(0, 0, -30) },
	Last365Days: func(at time.Time) time.Time { return at.AddDate(0, 0, -365) },
	ThisWeek:    func(at time.Time) time.Time { return calendar(at).BeginningOfWeek() },
	ThisMonth:   func(at time.Time) time.Time { return calendar(at).BeginningOfMonth() },
	ThisYear:    func(at time.Time) time.Time { return calendar(at).BeginningOfYear() },
}

func calendar(at time.Time) *now.Now {
	cfg := now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: at.Location(),
	}
	return cfg.With(at)
}

// Start resolves the window to its inclusive lower bound relative to at.
func (w Window) Start(at time.Time) (time.Time, error) {
	start, ok := windowStarts[w]
	if !ok {
		return time.Time{}, errors.Wrap(
			fmt.Errorf("window %s is not supported", w),
			"resolve window",
		)
	}
	return start(at), nil
}

// Windows lists the supported window names, sorted for stable help output.
func Windows() []string {
	res := make([]string, 0, len(windowStarts))
	for w := range windowStarts {
		res = append(res, string(w))
	}
	sort.Strings(res)
	return res
}
