package rilbinder_test

import (
	"testing"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder"
	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/binder/bindertest"
	"github.com/henrylee2cn/rilbinder/radio"
)

func TestTransportRegistry(t *testing.T) {
	_, ok := rilbinder.GetTransport(rilbinder.BinderTransport)
	assert.True(t, ok)
	assert.Contains(t, rilbinder.Transports(), "binder")
	assert.Panics(t, func() {
		rilbinder.RegTransport(rilbinder.BinderTransport, func(*rilbinder.Config, rilbinder.Sink) (rilbinder.Transport, error) {
			return nil, nil
		})
	})
	_, err := rilbinder.Connect("socket", nil, new(testSink))
	assert.Error(t, err)
}

func TestConnectBinder(t *testing.T) {
	sm := bindertest.NewServiceManager()
	sm.AddService(radio.FQName(radio.V1_4, "slot2"))
	sm.AddService(radio.FQName(radio.V1_2, "slot2"))
	var devs []string
	binder.SetOpener(func(dev string) (binder.ServiceManager, error) {
		devs = append(devs, dev)
		if dev == "/dev/missing" {
			return nil, errors.New("no such device")
		}
		return sm, nil
	})

	tr, err := rilbinder.Connect(rilbinder.BinderTransport, map[string]string{
		"modem":     "/connect",
		"name":      "slot2",
		"interface": "radio@1.3",
	}, new(testSink))
	if assert.NoError(t, err) {
		defer tr.Shutdown(false)
		s, ok := tr.(*rilbinder.Session)
		if assert.True(t, ok) {
			assert.Equal(t, radio.V1_2, s.Version())
			assert.Equal(t, "/connect", s.Config().Modem)
		}
		got, ok := rilbinder.Sessions.Get("/connect")
		assert.True(t, ok)
		assert.Equal(t, tr, rilbinder.Transport(got))
	}

	tr, err = rilbinder.Connect(rilbinder.BinderTransport, map[string]string{"dev": "/dev/missing"}, new(testSink))
	assert.Error(t, err)
	assert.Nil(t, tr)
	assert.Equal(t, []string{"/dev/hwbinder", "/dev/missing"}, devs)
}
