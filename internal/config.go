package internal

import (
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

type Config struct {
	Account               string        `env:"SIGNALD_ACCOUNT,required=true" validate:"required"`
	SocketPath            string        `env:"SIGNALD_SOCKET,default=/var/run/signald/signald.sock" validate:"required"`
	AutoAcceptInvitations bool          `env:"AUTO_ACCEPT_INVITATIONS,default=false"`
	DelayedLocalEcho      bool          `env:"DELAYED_LOCAL_ECHO,default=false"`
	GroupingLabel         string        `env:"GROUPING_LABEL,default=Signal" validate:"required"`
	DirectoryBackend      string        `env:"DIRECTORY_BACKEND,default=badger" validate:"oneof=badger redis"`
	RedisURL              string        `env:"REDIS_URL" validate:"required_if=DirectoryBackend redis"`
	BadgerFilepath        string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LimitMessages         *int          `env:"LIMIT_MESSAGES" validate:"omitempty,gt=0"`
	FrameBufferSize       int           `env:"FRAME_BUFFER_SIZE,default=64" validate:"gt=0"`
	RestartInterval       time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gte=0"`
	MetricInterval        time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"gt=0"`
	LowCapacityThreshold  int           `env:"LOW_CAPACITY_THRESHOLD,default=80" validate:"gt=0,lte=100"`
	LogLevel              string        `env:"LOG_LEVEL,default=INFO"`
}

var validate = validator.New()

// LoadConfig reads the given .env files (".env" when none) without overriding
// variables already set, then the environment.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return readConfig()
}

// ReloadConfig is LoadConfig where the .env files win over the current environment.
func ReloadConfig(files ...string) (Config, error) {
	if err := godotenv.Overload(files...); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reload env file: %w", err)
	}
	return readConfig()
}

func readConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
