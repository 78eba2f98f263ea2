package telegram

import (
	"github.com/mymmrac/telego"
)

// Update represents the update received from the Telegram.
type Update struct {
	update telego.Update
}

// GetChatID returns the ID of the chat the message was sent to.
func (t *Update) GetChatID() int {
	var chatID int

	if t.update.Message != nil {
		chatID = int(t.update.Message.Chat.ID)
	}
	if t.update.CallbackQuery != nil && t.update.CallbackQuery.Message != nil {
		chatID = int(t.update.CallbackQuery.Message.Chat.ID)
	}

	return chatID
}

// GetText returns the text content of the message or the data of pressed inline button.
func (t *Update) GetText() string {
	if t.update.Message != nil {
		return t.update.Message.Text
	}
	if t.update.CallbackQuery != nil {
		return t.update.CallbackQuery.Data
	}

	return ""
}

// GetSenderName returns the first name of the user who sent the message.
func (t *Update) GetSenderName() string {
	if t.update.Message != nil && t.update.Message.From != nil {
		return t.update.Message.From.FirstName
	}
	if t.update.CallbackQuery != nil {
		return t.update.CallbackQuery.From.FirstName
	}

	return ""
}
