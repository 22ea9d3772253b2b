// Package wire implements the legacy socket-RIL argument encoding.
//
// Copyright 2015-2018 HenryLee. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/henrylee2cn/goutil/errors"
)

var (
	// ErrShortBuffer is returned when the payload ends before a value.
	ErrShortBuffer = errors.New("wire: short buffer")
	// ErrNullString is returned by Utf8 when a null string is found.
	ErrNullString = errors.New("wire: unexpected null string")
	// ErrBadString is returned for an invalid string length.
	ErrBadString = errors.New("wire: bad string length")
)

// Parser reads legacy RIL arguments from a flat little-endian payload.
// The first failed read is remembered and returned by Err.
type Parser struct {
	buf []byte
	pos int
	err error
}

// NewParser creates a parser over b.
func NewParser(b []byte) *Parser {
	return &Parser{buf: b}
}

// Reset resets the parser to read b.
func (p *Parser) Reset(b []byte) {
	p.buf = b
	p.pos = 0
	p.err = nil
}

// Err returns the first read error, if any.
func (p *Parser) Err() error {
	return p.err
}

// AtEnd reports whether every byte has been consumed.
func (p *Parser) AtEnd() bool {
	return p.pos >= len(p.buf)
}

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *Parser) next(n int) ([]byte, bool) {
	if n < 0 || len(p.buf)-p.pos < n {
		p.fail(ErrShortBuffer)
		return nil, false
	}
	b := p.buf[p.pos : p.pos+n]
	p.pos += n
	return b, true
}

// Int32 reads one little-endian int32.
func (p *Parser) Int32() (int32, bool) {
	v, ok := p.Uint32()
	return int32(v), ok
}

// Uint32 reads one little-endian uint32.
func (p *Parser) Uint32() (uint32, bool) {
	b, ok := p.next(4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

// NullableUtf8 reads a String16 value, returning nil for a null string.
func (p *Parser) NullableUtf8() (*string, bool) {
	n, ok := p.Int32()
	if !ok {
		return nil, false
	}
	if n == -1 {
		return nil, true
	}
	if n < 0 {
		p.fail(ErrBadString)
		return nil, false
	}
	size := align4(int(n+1) * 2)
	b, ok := p.next(size)
	if !ok {
		return nil, false
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	s := string(utf16.Decode(units))
	return &s, true
}

// Utf8 reads a non-null String16 value.
func (p *Parser) Utf8() (string, bool) {
	s, ok := p.NullableUtf8()
	if !ok {
		return "", false
	}
	if s == nil {
		p.fail(ErrNullString)
		return "", false
	}
	return *s, true
}

func align4(n int) int {
	return (n + 3) &^ 3
}
