package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c, err := buildConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", c.API().ListenAddr)
	assert.Equal(t, "http://127.0.0.1:8000", c.API().DaemonURL.String())
	assert.Equal(t, 5, c.API().Retries)
	assert.Equal(t, 5*time.Minute, c.Notary().Window)
	assert.True(t, c.Notary().ValidateStars)
}

func TestConfigOverrides(t *testing.T) {
	viper.Set(Cfg_notary_window, "90s")
	viper.Set(Cfg_api_addr, "127.0.0.1:9000")
	defer func() {
		viper.Set(Cfg_notary_window, notaryDefaults[Cfg_notary_window])
		viper.Set(Cfg_api_addr, apiDefaults[Cfg_api_addr])
	}()

	c, err := buildConfig()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, c.Notary().Window)
	assert.Equal(t, "127.0.0.1:9000", c.API().ListenAddr)
}

func TestConfigInvalid(t *testing.T) {
	tests := map[string]interface{}{
		Cfg_notary_window:  "0s",
		Cfg_daemon_addr:    "not a url",
		Cfg_client_retries: -1,
		Cfg_logFormat:      "xml",
	}

	for k, v := range tests {
		orig := viper.Get(k)
		viper.Set(k, v)

		_, err := buildConfig()
		assert.Error(t, err, k)

		viper.Set(k, orig)
	}
}
