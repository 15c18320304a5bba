package stats

import (
	"time"

	"max.ks1230/expenses-tracker/internal/entity/expense"
)

const trendPoints = 12

const (
	monthLabelLayout = "Jan 06"
	weekLabelLayout  = "2 Jan"
)

// TrendPoint is one bucket of a trend series.
type TrendPoint struct {
	Label  string
	Amount float64
}

// Trends are the fixed rolling series shown above the summary. They
// cover the trailing 12 calendar months and 12 Monday-start weeks and
// ignore the user-selected window.
type Trends struct {
	Monthly []TrendPoint
	Weekly  []TrendPoint
}

func (r *Reporter) Trends() *Trends {
	at := r.nowFn()
	records := r.source.Records()
	return &Trends{
		Monthly: monthlyTrend(records, at),
		Weekly:  weeklyTrend(records, at),
	}
}

// monthlyTrend sums amounts per trailing calendar month, oldest first.
// Always 12 points; empty months contribute zero.
func monthlyTrend(records []expense.Record, at time.Time) []TrendPoint {
	month := calendar(at).BeginningOfMonth()

	res := make([]TrendPoint, 0, trendPoints)
	for i := trendPoints - 1; i >= 0; i-- {
		from := month.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)
		res = append(res, TrendPoint{
			Label:  from.Format(monthLabelLayout),
			Amount: sumBetween(records, from, to),
		})
	}
	return res
}

// weeklyTrend sums amounts per trailing Monday-start week, oldest first.
func weeklyTrend(records []expense.Record, at time.Time) []TrendPoint {
	week := calendar(at).BeginningOfWeek()

	res := make([]TrendPoint, 0, trendPoints)
	for i := trendPoints - 1; i >= 0; i-- {
		from := week.AddDate(0, 0, -7*i)
		to := from.AddDate(0, 0, 7)
		res = append(res, TrendPoint{
			Label:  from.Format(weekLabelLayout),
			Amount: sumBetween(records, from, to),
		})
	}
	return res
}

// sumBetween sums amounts of records dated in [from, to).
func sumBetween(records []expense.Record, from, to time.Time) float64 {
	total := 0.0
	for _, rec := range records {
		if rec.Date.Before(from) || !rec.Date.Before(to) {
			continue
		}
		total += rec.Amount
	}
	return total
}
