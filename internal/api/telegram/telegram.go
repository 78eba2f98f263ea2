package telegram

import (
	"fmt"

	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/fasthttp/router"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

// Ways to receive updates from Telegram.
const (
	UpdatesTypeWebhook = "webhook"
	UpdatesTypePolling = "polling"
)

const webhookPath = "/bot"

type telegramMessenger struct {
	api         *telego.Bot
	updatesType string
	srvAddr     string
}

var _ service.Messenger = (*telegramMessenger)(nil)

// Options represents options that required for creating new instance of telegram API.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// UpdatesType represents a way we'll receive updates from Telegram. (webhook | polling)
	UpdatesType string

	// ServerAddress represents an address on which we'll start a server. (Required for webhook updates type)
	ServerAddress string
	// WebhookURL represents an url to which telegram will send updates. (Required for webhook updates type)
	WebhookURL string
}

// New creates a new instance of telegram API.
func New(opts Options) (*telegramMessenger, error) {
	if opts.UpdatesType != UpdatesTypeWebhook && opts.UpdatesType != UpdatesTypePolling {
		return nil, fmt.Errorf("unknown updates type: %s", opts.UpdatesType)
	}

	bot, err := telego.NewBot(opts.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	if opts.UpdatesType == UpdatesTypeWebhook {
		err := bot.SetWebhook(&telego.SetWebhookParams{
			URL: opts.WebhookURL + webhookPath,
		})
		if err != nil {
			return nil, fmt.Errorf("set webhook url: %w", err)
		}
	}

	return &telegramMessenger{
		api:         bot,
		updatesType: opts.UpdatesType,
		srvAddr:     opts.ServerAddress,
	}, nil
}

func (t *telegramMessenger) ReadUpdates(result chan service.Message, errors chan error) {
	var (
		updates <-chan telego.Update
		err     error
	)

	switch t.updatesType {
	case UpdatesTypeWebhook:
		updates, err = t.api.UpdatesViaWebhook(webhookPath,
			telego.WithWebhookServer(telego.FastHTTPWebhookServer{
				Logger: t.api.Logger(),
				Server: &fasthttp.Server{},
				Router: router.New(),
			}),
		)
		if err != nil {
			errors <- fmt.Errorf("register webhook telegram updates receiver: %w", err)

			return
		}

		go func() {
			err := t.api.StartWebhook(t.srvAddr)
			if err != nil {
				errors <- fmt.Errorf("start webhook: %w", err)
			}
		}()
	case UpdatesTypePolling:
		updates, err = t.api.UpdatesViaLongPolling(nil)
		if err != nil {
			errors <- fmt.Errorf("register long polling telegram updates receiver: %w", err)

			return
		}
	}

	for update := range updates {
		msg := &Update{update: update}
		// Edited messages, channel posts and other updates without text aren't conversions.
		if msg.GetChatID() == 0 || msg.GetText() == "" {
			continue
		}

		result <- msg
	}
}

func (t *telegramMessenger) Close() error {
	switch t.updatesType {
	case UpdatesTypeWebhook:
		return t.api.StopWebhook()
	case UpdatesTypePolling:
		t.api.StopLongPolling()
	}

	return nil
}

func (t *telegramMessenger) SendMessage(chatID int, text string) error {
	return t.send(&sendOptions{
		chatID:  int64(chatID),
		message: text,
	})
}

func (t *telegramMessenger) SendWithKeyboard(opts service.SendWithKeyboardOptions) error {
	return t.send(&sendOptions{
		chatID:   int64(opts.ChatID),
		message:  opts.Message,
		keyboard: opts.Keyboard,
	})
}

type sendOptions struct {
	chatID  int64
	message string

	keyboard []service.KeyboardRow
}

func (t *telegramMessenger) send(opts *sendOptions) error {
	message := telegoutil.Message(telegoutil.ID(opts.chatID), opts.message)

	if len(opts.keyboard) != 0 {
		message = message.WithReplyMarkup(createKeyboard(opts.keyboard))
	}

	_, err := t.api.SendMessage(message)
	if err != nil {
		return err
	}

	return nil
}
