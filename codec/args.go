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

package codec

import (
	"strconv"
	"strings"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/wire"
)

var (
	// ErrBadArgs is returned when legacy arguments do not have the
	// expected layout.
	ErrBadArgs = errors.New("codec: malformed request arguments")
	// ErrBadCount is returned when a legacy element count is unexpected.
	ErrBadCount = errors.New("codec: unexpected argument count")
	// ErrNotInt is returned when a numeric string does not parse.
	ErrNotInt = errors.New("codec: not a decimal integer")
	// ErrTrailing is returned when arguments are left over.
	ErrTrailing = errors.New("codec: trailing arguments")
)

// args reads legacy arguments and keeps the first failure.
type args struct {
	p   *wire.Parser
	err error
}

func newArgs(p *wire.Parser) *args {
	return &args{p: p}
}

func (a *args) fail(err error) {
	if a.err == nil {
		a.err = err
	}
}

func (a *args) ok() bool {
	return a.err == nil
}

// done returns the first failure, if any.
func (a *args) done() error {
	return a.err
}

func (a *args) readFailed() {
	if err := a.p.Err(); err != nil {
		a.fail(err)
	} else {
		a.fail(ErrBadArgs)
	}
}

func (a *args) int32() int32 {
	if !a.ok() {
		return 0
	}
	v, ok := a.p.Int32()
	if !ok {
		a.readFailed()
	}
	return v
}

func (a *args) uint32() uint32 {
	if !a.ok() {
		return 0
	}
	v, ok := a.p.Uint32()
	if !ok {
		a.readFailed()
	}
	return v
}

// count reads an element count that must equal want.
func (a *args) count(want int32) {
	if n := a.int32(); a.ok() && n != want {
		a.fail(ErrBadCount)
	}
}

// str reads a non-null string.
func (a *args) str() string {
	if !a.ok() {
		return ""
	}
	s, ok := a.p.Utf8()
	if !ok {
		a.readFailed()
	}
	return s
}

// nullable reads a string that may be null.
func (a *args) nullable() *string {
	if !a.ok() {
		return nil
	}
	s, ok := a.p.NullableUtf8()
	if !ok {
		a.readFailed()
	}
	return s
}

// intOf parses a numeric string argument, nil fails.
func (a *args) intOf(s *string) int32 {
	if !a.ok() {
		return 0
	}
	if s == nil {
		a.fail(ErrNotInt)
		return 0
	}
	v, ok := ParseInt(*s)
	if !ok {
		a.fail(ErrNotInt)
	}
	return v
}

// atEnd requires every argument to have been consumed.
func (a *args) atEnd() {
	if a.ok() && !a.p.AtEnd() {
		a.fail(ErrTrailing)
	}
}

// ParseInt parses a decimal int32 surrounded by optional white space.
func ParseInt(s string) (int32, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
