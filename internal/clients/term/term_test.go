package term

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expenses-tracker/internal/model/commands"
	"max.ks1230/expenses-tracker/internal/model/ledger"
	"max.ks1230/expenses-tracker/internal/model/stats"
	"max.ks1230/expenses-tracker/internal/model/storage"
)

type confStub struct{}

func (confStub) DefaultCurrency() string  { return "USD" }
func (confStub) PlaceholderStore() string { return "Other" }

func newTestClient(input string) (*Client, *bytes.Buffer, *commands.Service) {
	out := &bytes.Buffer{}
	client := &Client{in: strings.NewReader(input), out: out}

	book := ledger.New(storage.NewInMemStorage(), confStub{})
	svc := commands.NewService(client, book, stats.NewReporter(book), confStub{})
	return client, out, svc
}

func Test_OnClosedInput_ShouldAnswerThenStop(t *testing.T) {
	client, out, svc := newTestClient("/list\n")

	client.ListenUpdates(context.Background(), svc)

	assert.Contains(t, out.String(), prompt)
	assert.Contains(t, out.String(), "no expenses")
}

func Test_OnCancelledContext_ShouldStopWithoutPrompting(t *testing.T) {
	client, out, svc := newTestClient("/list\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client.ListenUpdates(ctx, svc)

	assert.Empty(t, out.String())
}
