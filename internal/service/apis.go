package service

import "context"

// APIs contains all external APIs used by services.
type APIs struct {
	RateProvider RateProvider
	Messenger    Messenger
}

// RateProvider fetches exchange rates from a third-party API.
type RateProvider interface {
	// GetExchangeRate returns a multiplier such that amount_in_target = amount_in_base * rate.
	GetExchangeRate(ctx context.Context, baseCurrency, targetCurrency string) (float64, error)
}

// Messenger handles messaging operations between the application and messaging platform.
type Messenger interface {
	// ReadUpdates retrieves new incoming updates/messages from the messaging platform.
	ReadUpdates(result chan Message, errors chan error)
	// SendMessage sends a text message to the specified chat.
	SendMessage(chatID int, text string) error
	// SendWithKeyboard sends a message with an attached reply keyboard.
	SendWithKeyboard(opts SendWithKeyboardOptions) error

	// Close closes the underlying connection to the messaging platform.
	Close() error
}

// SendWithKeyboardOptions represents options for sending a message with a keyboard.
type SendWithKeyboardOptions struct {
	ChatID   int
	Message  string
	Keyboard []KeyboardRow
}

// KeyboardRow represents keyboard row with buttons.
type KeyboardRow struct {
	Buttons []string
}

// Message represents a message that was received from the messaging platform.
type Message interface {
	// GetChatID returns the ID of the chat the message was sent to.
	GetChatID() int
	// GetText returns the text content of the message.
	GetText() string
	// GetSenderName returns the name of the user who sent the message.
	GetSenderName() string
}
