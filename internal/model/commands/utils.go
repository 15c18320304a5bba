package commands

import (
	"fmt"
	"strings"

	"max.ks1230/expenses-tracker/internal/entity/expense"
	"max.ks1230/expenses-tracker/internal/model/stats"
)

const listDateLayout = "02 Jan 2006"

func splitFields(arg string) []string {
	parts := strings.Split(arg, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

func formatRecords(records []expense.Record) string {
	res := make([]string, 0, len(records))
	for i, rec := range records {
		name := rec.Name
		if name == "" {
			name = "(unnamed)"
		}
		line := fmt.Sprintf("%d. %s %s — %.2f %s · %s · %s",
			i+1, rec.Category.Emoji(), name,
			rec.Amount, rec.Currency,
			rec.Store, rec.Date.Format(listDateLayout))
		if rec.Details != "" {
			line += "\n   " + rec.Details
		}
		res = append(res, line)
	}
	return strings.Join(res, "\n")
}

func formatSummary(summary *stats.Summary) string {
	res := make([]string, 0)

	res = append(res, fmt.Sprintf("Report for %s:", summary.Window))
	for _, total := range summary.Totals {
		res = append(res, fmt.Sprintf("  %s: %.2f (%d records)",
			total.Currency, total.Amount, total.Count))
	}

	res = append(res, "", "By category:")
	res = append(res, formatSlices(summary.Categories)...)

	res = append(res, "", "Top stores:")
	res = append(res, formatSlices(summary.Stores)...)

	res = append(res, "", "By time of day:")
	res = append(res, formatSlices(summary.TimeOfDay)...)

	return strings.Join(res, "\n")
}

func formatSlices(slices []stats.Slice) []string {
	res := make([]string, 0, len(slices))
	for _, s := range slices {
		res = append(res, fmt.Sprintf("  %s: %.2f", s.Label, s.Amount))
	}
	return res
}

func formatTrends(trends *stats.Trends) string {
	res := make([]string, 0)

	res = append(res, "Last 12 months:")
	for _, pt := range trends.Monthly {
		res = append(res, fmt.Sprintf("  %s: %.2f", pt.Label, pt.Amount))
	}

	res = append(res, "", "Last 12 weeks:")
	for _, pt := range trends.Weekly {
		res = append(res, fmt.Sprintf("  %s: %.2f", pt.Label, pt.Amount))
	}

	return strings.Join(res, "\n")
}
