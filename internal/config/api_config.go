package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
}

func (config APIConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: api port"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("missing variable: metrics port"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("api.port", "API_PORT")
	if err != nil {
		return err
	}

	return viper.BindEnv("api.metrics_port", "METRICS_PORT")
}
