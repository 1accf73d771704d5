package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tcfw/starnotary/internal/utils/logging"
)

const (
	Cfg_verbose   = "verbose"
	Cfg_logFormat = "log_format"
)

var (
	defaults = map[string]interface{}{
		Cfg_verbose:   false,
		Cfg_logFormat: "text",
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("starnotary")
	viper.AddConfigPath("/etc/starnotary/")
	viper.AddConfigPath("$HOME/.starnotary")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("STARNOTARY")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logging.Entry().Debug("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	return buildConfig()
}

func buildConfig() (*Config, error) {
	var err error
	c := &Config{}

	c.api, err = buildAPIConfig()
	if err != nil {
		return nil, errors.Wrap(err, "api config")
	}

	c.notary, err = buildNotaryConfig()
	if err != nil {
		return nil, errors.Wrap(err, "notary config")
	}

	if err := logging.SetFormat(viper.GetString(Cfg_logFormat)); err != nil {
		return nil, err
	}

	if viper.GetBool(Cfg_verbose) {
		logging.SetLevel(logrus.DebugLevel)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	api    *API
	notary *Notary
}

func (c *Config) API() *API {
	return c.api
}

func (c *Config) Notary() *Notary {
	return c.notary
}
