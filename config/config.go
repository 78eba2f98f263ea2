package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	ExchangeRate ExchangeRate
	Telegram     Telegram
	HTTP         HTTP
	Worker       Worker
	Logger       Logger
}

// ExchangeRate represents an exchange rate API configuration.
type ExchangeRate struct {
	APIURL  string        `env:"EXCHANGE_RATE_API_URL" env-default:"https://v6.exchangerate-api.com/v6"`
	APIKey  string        `env:"EXCHANGE_RATE_API_KEY"`
	Timeout time.Duration `env:"EXCHANGE_RATE_TIMEOUT" env-default:"10s"`
}

// Telegram represents a telegram bot configuration.
type Telegram struct {
	Enabled       bool   `env:"TELEGRAM_ENABLED" env-default:"true"`
	BotToken      string `env:"BOT_TOKEN"`
	UpdatesType   string `env:"UPDATES_TYPE" env-default:"polling"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	ServerAddress string `env:"SERVER_ADDRESS" env-default:":8443"`
}

// HTTP represents a configuration of the conversion HTTP endpoint.
type HTTP struct {
	Enabled bool   `env:"HTTP_ENABLED" env-default:"true"`
	Address string `env:"HTTP_ADDRESS" env-default:":8080"`
}

// Worker represents a configuration of background conversions.
type Worker struct {
	Count     int `env:"CONVERSION_WORKERS" env-default:"4"`
	QueueSize int `env:"CONVERSION_QUEUE_SIZE" env-default:"100"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"CC_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"CC_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"CC_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
	MaxFileSizeMB   int    `env:"CC_LOGGER_MAX_FILE_SIZE_MB" env-default:"100"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
