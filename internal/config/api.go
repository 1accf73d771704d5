package config

import (
	"net/url"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type API struct {
	ListenAddr string
	DaemonURL  *url.URL
	Retries    int
}

const (
	Cfg_api_addr       = "api_addr"
	Cfg_daemon_addr    = "daemon_addr"
	Cfg_client_retries = "client.retries"
)

var (
	apiDefaults = map[string]interface{}{
		Cfg_api_addr:       ":8000",
		Cfg_daemon_addr:    "http://127.0.0.1:8000",
		Cfg_client_retries: 5,
	}
)

func init() {
	for k, v := range apiDefaults {
		viper.SetDefault(k, v)
	}
}

func buildAPIConfig() (*API, error) {
	c := &API{}

	c.ListenAddr = viper.GetString(Cfg_api_addr)
	c.Retries = viper.GetInt(Cfg_client_retries)

	u, err := url.Parse(viper.GetString(Cfg_daemon_addr))
	if err != nil {
		return nil, errors.Wrap(err, "parsing daemon address")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("daemon address must be an absolute url: %s", u)
	}
	c.DaemonURL = u

	if c.Retries < 0 {
		return nil, errors.New("client retries must not be negative")
	}

	return c, nil
}
