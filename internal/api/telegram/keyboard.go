package telegram

import (
	"github.com/VladPetriv/currency_converter/internal/service"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
)

func createKeyboard(rows []service.KeyboardRow) *telego.ReplyKeyboardMarkup {
	convertedRows := make([][]telego.KeyboardButton, 0, len(rows))

	for _, r := range rows {
		buttons := make([]telego.KeyboardButton, 0, len(r.Buttons))

		for _, b := range r.Buttons {
			buttons = append(buttons, telegoutil.KeyboardButton(b))
		}

		convertedRows = append(convertedRows, buttons)
	}

	return telegoutil.Keyboard(convertedRows...).WithResizeKeyboard()
}
