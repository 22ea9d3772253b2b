package rilbinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder"
	"github.com/henrylee2cn/rilbinder/radio"
)

func TestConfigFromMap(t *testing.T) {
	var cases = []struct {
		args    map[string]string
		modem   string
		dev     string
		name    string
		version radio.Version
	}{
		{nil, "/ril_0", "/dev/hwbinder", "slot1", radio.V1_4},
		{map[string]string{"modem": "/ril_1", "name": "slot2"}, "/ril_1", "/dev/hwbinder", "slot2", radio.V1_4},
		{map[string]string{"dev": "/dev/vndbinder", "interface": "radio@1.2"}, "/ril_0", "/dev/vndbinder", "slot1", radio.V1_2},
		{map[string]string{"interface": "radio@1.1", "ignored": "x"}, "/ril_0", "/dev/hwbinder", "slot1", radio.V1_1},
		{map[string]string{"interface": "radio@9.9"}, "/ril_0", "/dev/hwbinder", "slot1", radio.V1_4},
	}
	for _, c := range cases {
		cfg, err := rilbinder.ConfigFromMap(c.args)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Equal(t, c.modem, cfg.Modem)
		assert.Equal(t, c.dev, cfg.Dev)
		assert.Equal(t, c.name, cfg.Name)
		assert.Equal(t, c.version, cfg.Version())
	}

	_, err := rilbinder.ConfigFromMap(map[string]string{"name": "slot/1"})
	assert.Error(t, err)
}

func TestConfigFromJSON(t *testing.T) {
	cfg, err := rilbinder.ConfigFromJSON([]byte(`{"modem":"/ril_1","name":"slot2","interface":"radio@1.0"}`))
	if assert.NoError(t, err) {
		assert.Equal(t, "/ril_1", cfg.Modem)
		assert.Equal(t, "/dev/hwbinder", cfg.Dev)
		assert.Equal(t, "slot2", cfg.Name)
		assert.Equal(t, radio.V1_0, cfg.Version())
	}
	_, err = rilbinder.ConfigFromJSON([]byte(`{"modem":`))
	assert.Error(t, err)
}

func TestConfigZeroValue(t *testing.T) {
	var cfg rilbinder.Config
	assert.Equal(t, radio.MaxVersion, cfg.Version())
}
