package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/budget-tracker/internal/config"
	"github.com/sheikh-saqib/budget-tracker/internal/controller"
	"github.com/sheikh-saqib/budget-tracker/internal/events/kafka"
	"github.com/sheikh-saqib/budget-tracker/internal/input"
	interfaces "github.com/sheikh-saqib/budget-tracker/internal/interfaces"
	"github.com/sheikh-saqib/budget-tracker/internal/ledger"
	"github.com/sheikh-saqib/budget-tracker/internal/logging"
	"github.com/sheikh-saqib/budget-tracker/internal/presenter"
	"github.com/sheikh-saqib/budget-tracker/internal/presenter/events"
	"github.com/sheikh-saqib/budget-tracker/internal/presenter/terminal"
	"github.com/sheikh-saqib/budget-tracker/internal/storage/memory"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the process exit code so deferred cleanup runs before
// main exits.
func realMain() int {
	configLocation := flag.String("config", "", "path to an optional YAML configuration file")
	envFile := flag.String("env-file", ".env", "path to an optional .env file")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.Load(*configLocation, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		return 1
	}
	if err := conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := logging.New(conf.Logging, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var publisher interfaces.EventPublisher
	if conf.UsesEvents() {
		kafkaPublisher := kafka.NewPublisher(conf.Kafka.Brokers, logger)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Warn("failed to close publisher", zap.String("op", "main"), zap.Error(err))
			}
		}()
		publisher = kafkaPublisher
	}

	if err := run(ctx, conf, publisher, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error("budget tracker stopped", zap.String("op", "main"), zap.Error(err))
		return 1
	}
	return 0
}

// run drives the interactive session until quit, end of input or ctx is
// done. publisher may be nil when events are disabled.
func run(ctx context.Context, conf *config.Configuration, publisher interfaces.EventPublisher, logger *zap.Logger, in io.Reader, out io.Writer) error {
	var (
		view       *terminal.Presenter
		presenters presenter.Multi
	)
	if conf.UsesTerminal() {
		view = terminal.NewPresenter()
		presenters = append(presenters, view)
	}
	if conf.UsesEvents() && publisher != nil {
		presenters = append(presenters, events.NewPresenter(publisher, conf.Kafka.Topic, logger))
	}

	var p interfaces.Presenter = presenters
	store := memory.NewMemoryEntryStore()
	budget := ledger.NewLedger(store, logger)
	ctrl := controller.NewController(budget, p, logger)

	if err := ctrl.Init(ctx); err != nil {
		return err
	}
	render := func() {
		if view == nil {
			return
		}
		if err := view.Render(out); err != nil {
			logger.Error("failed to render view", zap.String("op", "main.run"), zap.Error(err))
		}
	}
	render()

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprintf(out, "[%s]> ", ctrl.InputType())

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = l
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := input.Parse(line, ctrl.InputType())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.Kind {
		case input.KindQuit:
			return nil
		case input.KindHelp:
			fmt.Fprintln(out, input.Usage)
			continue
		case input.KindShow:
		case input.KindChangeType:
			if _, err := ctrl.ChangeType(ctx); err != nil {
				reportActionError(out, logger, "type", err)
			}
		case input.KindAdd:
			if _, err := ctrl.AddItem(ctx, cmd.Add); err != nil {
				if isInputError(err) {
					fmt.Fprintln(out, err)
					continue
				}
				reportActionError(out, logger, "add", err)
			}
		case input.KindDelete:
			if err := ctrl.DeleteItem(ctx, cmd.Ref); err != nil {
				reportActionError(out, logger, "del", err)
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		render()
	}
}

// reportActionError logs a failed command without ending the session. The
// ledger change is kept even when a presenter failed after it.
func reportActionError(out io.Writer, logger *zap.Logger, command string, err error) {
	logger.Error("command did not complete",
		zap.String("op", "main.run"),
		zap.String("command", command),
		zap.Error(err),
	)
	fmt.Fprintf(out, "warning: %s: %v\n", command, err)
}

func isInputError(err error) bool {
	return errors.Is(err, controller.ErrEmptyDescription) || errors.Is(err, controller.ErrInvalidAmount)
}
