package service

import (
	"strings"
)

type commandType string

const (
	commandHelp       commandType = "help"
	commandCurrencies commandType = "currencies"
	commandConvert    commandType = "convert"
	commandUnknown    commandType = "unknown"
)

// Commands that we can receive from messenger.
const (
	botStartCommand      string = "/start"
	botHelpCommand       string = "/help"
	botCurrenciesCommand string = "/currencies"
	botConvertCommand    string = "/convert"
)

// Currencies used when user omits them.
const (
	defaultFromCurrency = "USD"
	defaultToCurrency   = "EUR"
)

type command struct {
	kind commandType
	opts ConvertOptions
}

// parseCommand recognizes "/convert <amount> [FROM] [TO]" and the bare "<amount> [FROM] [to] [TO]" form.
func parseCommand(text string) command {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return command{kind: commandUnknown}
	}

	// Telegram appends bot name to commands in group chats: /convert@bot_name.
	name, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")

	switch name {
	case botStartCommand, botHelpCommand:
		return command{kind: commandHelp}
	case botCurrenciesCommand:
		return command{kind: commandCurrencies}
	case botConvertCommand:
		return parseConvertArgs(fields[1:])
	}

	if !looksLikeAmount(name) {
		return command{kind: commandUnknown}
	}

	return parseConvertArgs(fields)
}

func parseConvertArgs(args []string) command {
	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "to", "in", "=", "->":
			continue
		}

		filtered = append(filtered, arg)
	}

	if len(filtered) == 0 || len(filtered) > 3 {
		return command{kind: commandUnknown}
	}

	opts := ConvertOptions{
		Amount:       filtered[0],
		FromCurrency: defaultFromCurrency,
		ToCurrency:   defaultToCurrency,
	}
	if len(filtered) > 1 {
		opts.FromCurrency = filtered[1]
	}
	if len(filtered) > 2 {
		opts.ToCurrency = filtered[2]
	}

	return command{kind: commandConvert, opts: opts}
}

func looksLikeAmount(field string) bool {
	if field == "" {
		return false
	}

	return strings.IndexAny(field[:1], "0123456789+-.") == 0
}
