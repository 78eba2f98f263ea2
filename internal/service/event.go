package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/VladPetriv/currency_converter/pkg/errs"
	"github.com/VladPetriv/currency_converter/pkg/logger"
	"github.com/VladPetriv/currency_converter/pkg/worker"
)

// currenciesPerLine is the number of codes shown per line in /currencies reply.
const currenciesPerLine = 10

type eventService struct {
	logger    *logger.Logger
	messenger Messenger
	converter ConverterService
	pool      *worker.Pool[conversionJob]
}

var _ EventService = (*eventService)(nil)

// EventOptions represents an input options for creating new instance of event service.
type EventOptions struct {
	Logger    *logger.Logger
	Messenger Messenger
	Converter ConverterService

	// WorkersCount is the number of conversions which can run at the same time across all chats.
	WorkersCount int
	// QueueSize is the number of accepted conversions which can wait for a free worker.
	QueueSize int
}

type conversionJob struct {
	chatID int
	opts   ConvertOptions
}

// NewEvent returns new instance of event service.
func NewEvent(opts *EventOptions) *eventService {
	e := &eventService{
		logger:    opts.Logger,
		messenger: opts.Messenger,
		converter: opts.Converter,
	}

	e.pool = worker.NewPool(worker.PoolOptions[conversionJob]{
		WorkersCount: opts.WorkersCount,
		QueueSize:    opts.QueueSize,
		HandlerFunc:  e.handleConversion,
		Logger:       opts.Logger,
	})

	return e
}

func (e *eventService) Listen(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	// Conversions already accepted run to completion even after shutdown was requested.
	e.pool.Start(context.WithoutCancel(ctx))
	defer e.pool.Stop()

	updatesCH := make(chan Message)
	errorsCH := make(chan error)

	go e.messenger.ReadUpdates(updatesCH, errorsCH)

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stop listening for updates")
			return
		case msg := <-updatesCH:
			e.handleMessageSafely(ctx, msg)
		case err := <-errorsCH:
			logger.Error().Err(err).Msg("read updates")
		}
	}
}

func (e *eventService) handleMessageSafely(ctx context.Context, msg Message) {
	logger := e.logger.With().Str("name", "eventService.handleMessageSafely").Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic while processing update")
		}
	}()

	err := e.handleMessage(ctx, msg)
	if err != nil {
		logger.Error().Err(err).Int("chatID", msg.GetChatID()).Msg("handle message")
	}
}

func (e *eventService) handleMessage(_ context.Context, msg Message) error {
	logger := e.logger.With().Str("name", "eventService.handleMessage").Logger()

	chatID := msg.GetChatID()
	cmd := parseCommand(msg.GetText())
	logger.Debug().
		Int("chatID", chatID).
		Str("sender", msg.GetSenderName()).
		Str("command", string(cmd.kind)).
		Msg("got command")

	switch cmd.kind {
	case commandHelp:
		err := e.messenger.SendWithKeyboard(SendWithKeyboardOptions{
			ChatID:   chatID,
			Message:  helpMessage,
			Keyboard: defaultKeyboardRows,
		})
		if err != nil {
			return fmt.Errorf("send help with keyboard to chat %d: %w", chatID, err)
		}

		return nil
	case commandCurrencies:
		return e.send(chatID, currenciesMessage(e.converter.AvailableCurrencies(), currenciesPerLine))
	case commandConvert:
		return e.startConversion(chatID, cmd.opts)
	default:
		return e.send(chatID, unknownCommandMessage+"\n\n"+helpMessage)
	}
}

// startConversion queues a conversion for the chat. Each chat is either idle or has exactly one conversion pending.
func (e *eventService) startConversion(chatID int, opts ConvertOptions) error {
	// Invalid amount is reported right away, without occupying a worker.
	_, err := ParseAmount(opts.Amount)
	if err != nil {
		return e.send(chatID, UserMessage(err))
	}

	jobID := strconv.Itoa(chatID)
	if e.pool.IsPending(jobID) {
		return e.send(chatID, conversionInProgressMessage)
	}

	// Jobs are added only from the updates loop, so capacity checked here is still there after "Converting..." is sent.
	if !e.pool.HasCapacity() {
		return e.send(chatID, busyMessage)
	}

	err = e.send(chatID, convertingMessage)
	if err != nil {
		return err
	}

	if !e.pool.AddJob(jobID, conversionJob{chatID: chatID, opts: opts}) {
		return e.send(chatID, busyMessage)
	}

	return nil
}

func (e *eventService) handleConversion(ctx context.Context, _ string, job conversionJob) error {
	result, err := e.converter.Convert(ctx, job.opts)
	if err != nil {
		sendErr := e.send(job.chatID, UserMessage(err))
		if sendErr != nil {
			return sendErr
		}
		if errs.IsExpected(err) {
			return nil
		}

		return fmt.Errorf("convert: %w", err)
	}

	return e.send(job.chatID, result.String())
}

func (e *eventService) send(chatID int, text string) error {
	err := e.messenger.SendMessage(chatID, text)
	if err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}

	return nil
}
