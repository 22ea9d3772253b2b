package wire_test

import (
	"testing"

	"github.com/henrylee2cn/rilbinder/wire"
	"github.com/stretchr/testify/assert"
)

func TestUtf8Layout(t *testing.T) {
	var cases = []struct {
		src string
		dst []byte
	}{
		{"", []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"a", []byte{1, 0, 0, 0, 'a', 0, 0, 0}},
		{"ab", []byte{2, 0, 0, 0, 'a', 0, 'b', 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		w := wire.NewWriter()
		w.AppendUtf8(c.src)
		assert.Equal(t, c.dst, w.Bytes(), c.src)
	}
	w := wire.NewWriter()
	w.AppendNullableUtf8(nil)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, w.Bytes())
}

func TestRoundTrip(t *testing.T) {
	w := wire.NewWriter()
	w.AppendInt32s(1, -2)
	w.AppendUtf8("Acme")
	w.AppendNullableUtf8(nil)
	w.AppendFormat("%d", 262)
	w.AppendUtf8("日本")

	p := wire.NewParser(w.Bytes())
	v, ok := p.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(2), v)
	v, ok = p.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)
	v, _ = p.Int32()
	assert.Equal(t, int32(-2), v)
	s, ok := p.Utf8()
	assert.True(t, ok)
	assert.Equal(t, "Acme", s)
	ns, ok := p.NullableUtf8()
	assert.True(t, ok)
	assert.Nil(t, ns)
	s, _ = p.Utf8()
	assert.Equal(t, "262", s)
	s, _ = p.Utf8()
	assert.Equal(t, "日本", s)
	assert.True(t, p.AtEnd())
	assert.NoError(t, p.Err())
}

func TestParserErrors(t *testing.T) {
	p := wire.NewParser([]byte{1, 0})
	_, ok := p.Int32()
	assert.False(t, ok)
	assert.Equal(t, wire.ErrShortBuffer, p.Err())

	p.Reset([]byte{0xff, 0xff, 0xff, 0xff})
	_, ok = p.Utf8()
	assert.False(t, ok)
	assert.Equal(t, wire.ErrNullString, p.Err())

	p.Reset([]byte{5, 0, 0, 0, 'a', 0})
	_, ok = p.NullableUtf8()
	assert.False(t, ok)
}
