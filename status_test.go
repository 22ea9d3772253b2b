package rilbinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder"
)

func TestCodeText(t *testing.T) {
	assert.Equal(t, "Unknown Command", rilbinder.CodeText(rilbinder.CodeUnknownCommand))
	assert.Equal(t, "Unknown Error", rilbinder.CodeText(12345))
	stat := rilbinder.NewStatusByCodeText(rilbinder.CodeConnectFailed, "gone", false)
	assert.Equal(t, rilbinder.CodeConnectFailed, stat.Code())
	assert.Equal(t, "Connect Failed", stat.Msg())
	assert.True(t, rilbinder.IsConnError(stat))
	assert.False(t, rilbinder.IsConnError(nil))
}
