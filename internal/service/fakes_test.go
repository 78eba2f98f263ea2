package service

import (
	"context"
	"sync"
)

type fakeRateProvider struct {
	rates map[string]float64
	err   error
	// block, when set, holds every request until it's closed.
	block chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *fakeRateProvider) GetExchangeRate(_ context.Context, baseCurrency, targetCurrency string) (float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.block != nil {
		<-f.block
	}

	if f.err != nil {
		return 0, f.err
	}

	rate, ok := f.rates[baseCurrency+targetCurrency]
	if !ok {
		return 0, &UnknownCurrencyError{Currency: targetCurrency}
	}

	return rate, nil
}

func (f *fakeRateProvider) callsCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

type fakeMessage struct {
	chatID int
	text   string
}

func (m fakeMessage) GetChatID() int        { return m.chatID }
func (m fakeMessage) GetText() string       { return m.text }
func (m fakeMessage) GetSenderName() string { return "tester" }

type sentMessage struct {
	chatID int
	text   string
}

type fakeMessenger struct {
	incoming chan Message

	mu   sync.Mutex
	sent []sentMessage
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{incoming: make(chan Message, 10)}
}

func (m *fakeMessenger) ReadUpdates(result chan Message, _ chan error) {
	for msg := range m.incoming {
		result <- msg
	}
}

func (m *fakeMessenger) SendMessage(chatID int, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func (m *fakeMessenger) SendWithKeyboard(opts SendWithKeyboardOptions) error {
	return m.SendMessage(opts.ChatID, opts.Message)
}

func (m *fakeMessenger) Close() error {
	return nil
}

func (m *fakeMessenger) textsFor(chatID int) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var texts []string
	for _, msg := range m.sent {
		if msg.chatID == chatID {
			texts = append(texts, msg.text)
		}
	}

	return texts
}

func (m *fakeMessenger) texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	texts := make([]string, 0, len(m.sent))
	for _, msg := range m.sent {
		texts = append(texts, msg.text)
	}

	return texts
}
