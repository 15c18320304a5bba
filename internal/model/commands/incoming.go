package commands

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

type replySender interface {
	SendMessage(text string) error
}

type CommandHandler interface {
	HandleCommand(ctx context.Context, text string) (string, error)
}

type Service struct {
	sender  replySender
	handler CommandHandler
}

func NewService(sender replySender, ledger recordLedger, reporter reportSource, config config) *Service {
	return &Service{
		sender:  sender,
		handler: newHandler(ledger, reporter, config),
	}
}

type Message struct {
	Text string
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleCommand")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleCommand(ctx, msg.Text)
	if err != nil {
		_ = s.sender.SendMessage(resp)
		return err
	}
	return s.sender.SendMessage(resp)
}
