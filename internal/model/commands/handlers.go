package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/expenses-tracker/internal/entity/currency"
	"max.ks1230/expenses-tracker/internal/entity/expense"
	"max.ks1230/expenses-tracker/internal/model/stats"
)

const (
	helloMessage = "Hi! I keep track of your expenses 💸\n" +
		"  /add name; category; amount[; currency[; store[; details]]]\n" +
		"  /list — expenses, newest first\n" +
		"  /delete n [m ...] — remove expenses by list number\n" +
		"  /report [window] — totals for a time window\n" +
		"  /trends — last 12 months and 12 weeks"
	dontUnderstandMessage = "I don't understand you. Try /start"
	okMessage             = "Gotcha!"
	deletedMessage        = "Deleted."
	noExpensesMessage     = "You have no expenses yet"

	incorrectUsageMessage  = "That is an incorrect command usage. Try /start"
	incorrectAmountMessage = "That amount doesn't look like a number. The expense was not saved"
	incorrectIndexMessage  = "That is not a number from /list"
	incorrectWindowMessage = "Unknown report window. Try one of: "
)

const (
	startCommand  = "/start"
	addCommand    = "/add"
	listCommand   = "/list"
	deleteCommand = "/delete"
	reportCommand = "/report"
	trendsCommand = "/trends"
)

const defaultReportWindow = stats.Last30Days

type recordLedger interface {
	AddRecord(ctx context.Context, rec expense.Record)
	DeleteRecords(ctx context.Context, indices []int) error
	Records() []expense.Record
}

type reportSource interface {
	Summarize(window stats.Window) (*stats.Summary, error)
	Trends() *stats.Trends
}

type config interface {
	DefaultCurrency() string
	PlaceholderStore() string
}

type handler func(ctx context.Context, arg string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      recordLedger
	reporter    reportSource
	config      config
}

func newHandler(ledger recordLedger, reporter reportSource, config config) *HandlerService {
	res := &HandlerService{
		handlersMap: nil,
		ledger:      ledger,
		reporter:    reporter,
		config:      config,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleCommand(ctx context.Context, text string) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg)
	}
	return dontUnderstandMessage, nil
}

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", 2)

	if len(split) == 2 {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[addCommand] = s.handleAdd
	m[listCommand] = s.handleList
	m[deleteCommand] = s.handleDelete
	m[reportCommand] = s.handleReport
	m[trendsCommand] = s.handleTrends

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string) (string, error) {
	return helloMessage +
		"\nCurrency codes I suggest: " + strings.Join(currency.Currencies, ", ") +
		" (default " + s.config.DefaultCurrency() + ")", nil
}

// handleAdd accepts "name; category; amount" with optional trailing
// "; currency; store; details" fields. Only the amount is validated;
// empty name, unknown category and empty store all fall back to the
// documented defaults.
func (s *HandlerService) handleAdd(ctx context.Context, arg string) (string, error) {
	fields := splitFields(arg)
	if len(fields) < 3 {
		return incorrectUsageMessage, nil
	}

	amount, err := expense.ParseAmount(fields[2])
	if err != nil {
		return incorrectAmountMessage, errors.Wrap(err, "handle add")
	}

	rec := expense.NewRecord(fields[0], expense.ParseCategory(fields[1]), amount)
	rec.Currency = currency.Normalize(fieldAt(fields, 3), s.config.DefaultCurrency())
	if store := fieldAt(fields, 4); store != "" {
		rec.Store = store
	} else {
		rec.Store = s.config.PlaceholderStore()
	}
	rec.Details = fieldAt(fields, 5)

	s.ledger.AddRecord(ctx, rec)
	return okMessage, nil
}

func (s *HandlerService) handleList(_ context.Context, _ string) (string, error) {
	records := s.ledger.Records()
	if len(records) == 0 {
		return noExpensesMessage, nil
	}
	return formatRecords(records), nil
}

// handleDelete removes expenses by their 1-based /list numbers.
func (s *HandlerService) handleDelete(ctx context.Context, arg string) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage, nil
	}

	indices := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return incorrectIndexMessage, nil
		}
		indices = append(indices, n-1)
	}

	if err := s.ledger.DeleteRecords(ctx, indices); err != nil {
		return incorrectIndexMessage, errors.Wrap(err, "handle delete")
	}
	return deletedMessage, nil
}

func (s *HandlerService) handleReport(_ context.Context, arg string) (string, error) {
	window := defaultReportWindow
	if arg != "" {
		window = stats.Window(strings.TrimSpace(arg))
	}

	summary, err := s.reporter.Summarize(window)
	if err != nil {
		msg := incorrectWindowMessage + strings.Join(stats.Windows(), ", ")
		return msg, errors.Wrap(err, "handle report")
	}
	if len(summary.Totals) == 0 {
		return noExpensesMessage, nil
	}
	return formatSummary(summary), nil
}

func (s *HandlerService) handleTrends(_ context.Context, _ string) (string, error) {
	return formatTrends(s.reporter.Trends()), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string) (string, error) {
	return dontUnderstandMessage, nil
}
