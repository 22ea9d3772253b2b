package rilbinder_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := rilbinder.NewLogger("INFO", &buf)
	assert.Equal(t, "INFO", l.Level())

	l.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warnf("radio %s", "died")
	line := buf.String()
	assert.Regexp(t, regexp.MustCompile(`^\[\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\] \[WARN\] radio died <.*log_test\.go:\d+>\n$`), line)

	buf.Reset()
	l.SetLevel("trace")
	l.Tracef("x")
	assert.True(t, strings.Contains(buf.String(), "[TRAC] x <"))

	assert.Panics(t, func() { l.SetLevel("LOUD") })
	assert.Panics(t, func() { l.Panicf("boom") })
}

func TestGlobalLogger(t *testing.T) {
	old := rilbinder.GetLogger()
	defer rilbinder.SetLogger(old)

	var buf bytes.Buffer
	rilbinder.SetLogger(rilbinder.NewLogger("ERROR", &buf))
	rilbinder.SetLogger(nil)
	assert.Equal(t, "ERROR", rilbinder.GetLoggerLevel())
	rilbinder.Warnf("dropped")
	rilbinder.Errorf("kept")
	assert.Contains(t, buf.String(), "[ERRO] kept")
	assert.NotContains(t, buf.String(), "dropped")
}
