package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type NotifierConfig struct {
	AmqpURI              string  `mapstructure:"amqp_uri"`
	Queue                string  `mapstructure:"queue"`
	VerificationBaseURL  string  `mapstructure:"verification_base_url"`
	MaxMessagesPerSecond float32 `mapstructure:"max_messages_per_second"`
}

func (config NotifierConfig) validate() error {
	var errs []error

	if config.AmqpURI == "" {
		errs = append(errs, fmt.Errorf("missing variable: amqp_uri"))
	}
	if config.Queue == "" {
		errs = append(errs, fmt.Errorf("missing variable: queue"))
	}
	if config.VerificationBaseURL == "" {
		errs = append(errs, fmt.Errorf("missing variable: verification_base_url"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config NotifierConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("notifier.amqp_uri", "AMQP_URI"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("notifier.queue", "NOTIFIER_QUEUE"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("notifier.verification_base_url", "VERIFICATION_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
