package term

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"max.ks1230/expenses-tracker/internal/logger"

	"max.ks1230/expenses-tracker/internal/model/commands"
)

const (
	prompt         = "> "
	timeoutSeconds = 5
)

// Client drives the command service from a line-oriented terminal.
// It stands where a UI would: every line is one discrete user action.
type Client struct {
	in  io.Reader
	out io.Writer
}

func New() *Client {
	return &Client{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Client) SendMessage(text string) error {
	_, err := io.WriteString(c.out, text+"\n")
	return err
}

func (c *Client) ListenUpdates(ctx context.Context, svc *commands.Service) {
	lines := make(chan string)
	go c.readLines(ctx, lines)

	logger.Info("Start listening for commands")

	for {
		// no prompt once the context is gone
		if ctx.Err() != nil {
			logger.Info("Stop listening for commands")
			return
		}
		_, _ = io.WriteString(c.out, prompt)
		select {
		case <-ctx.Done():
			logger.Info("Stop listening for commands")
			return
		case line, ok := <-lines:
			if !ok {
				logger.Info("Input closed, stop listening for commands")
				return
			}
			c.listenOnce(ctx, line, svc)
		}
	}
}

func (c *Client) listenOnce(ctx context.Context, line string, svc *commands.Service) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*timeoutSeconds)
	defer cancel()

	err := svc.HandleIncomingMessage(ctx, commands.Message{Text: line})
	if err != nil {
		logger.Error("error processing command:", zap.Error(err))
	}
}

func (c *Client) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return
		case lines <- scanner.Text():
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("error reading input:", zap.Error(err))
	}
}
