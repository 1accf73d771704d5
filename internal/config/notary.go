package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Notary struct {
	Window        time.Duration
	ValidateStars bool
}

const (
	Cfg_notary_window        = "notary.window"
	Cfg_notary_validateStars = "notary.validate_stars"
)

var (
	notaryDefaults = map[string]interface{}{
		Cfg_notary_window:        "5m",
		Cfg_notary_validateStars: true,
	}
)

func init() {
	for k, v := range notaryDefaults {
		viper.SetDefault(k, v)
	}
}

func buildNotaryConfig() (*Notary, error) {
	c := &Notary{}

	c.Window = viper.GetDuration(Cfg_notary_window)
	if c.Window < time.Second {
		return nil, errors.Errorf("challenge window too short: %s", c.Window)
	}

	c.ValidateStars = viper.GetBool(Cfg_notary_validateStars)

	return c, nil
}
