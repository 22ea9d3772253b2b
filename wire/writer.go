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
	"fmt"
	"unicode/utf16"
)

// Writer builds a legacy RIL payload.
type Writer struct {
	buf []byte
}

// NewWriter creates an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset discards the written bytes and keeps the capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// AppendInt32 appends a little-endian int32.
func (w *Writer) AppendInt32(v int32) {
	w.AppendUint32(uint32(v))
}

// AppendUint32 appends a little-endian uint32.
func (w *Writer) AppendUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// AppendInt32s appends count followed by each value.
func (w *Writer) AppendInt32s(v ...int32) {
	w.AppendInt32(int32(len(v)))
	for _, i := range v {
		w.AppendInt32(i)
	}
}

// AppendUtf8 appends s as a String16 value.
func (w *Writer) AppendUtf8(s string) {
	units := utf16.Encode([]rune(s))
	w.AppendInt32(int32(len(units)))
	start := len(w.buf)
	for _, u := range units {
		w.buf = binary.LittleEndian.AppendUint16(w.buf, u)
	}
	w.buf = append(w.buf, 0, 0)
	for (len(w.buf)-start)&3 != 0 {
		w.buf = append(w.buf, 0)
	}
}

// AppendNullableUtf8 appends s, writing a null string for nil.
func (w *Writer) AppendNullableUtf8(s *string) {
	if s == nil {
		w.AppendInt32(-1)
		return
	}
	w.AppendUtf8(*s)
}

// AppendFormat appends the formatted text as a String16 value.
func (w *Writer) AppendFormat(format string, args ...interface{}) {
	w.AppendUtf8(fmt.Sprintf(format, args...))
}

// AppendBytes appends raw bytes with no length prefix.
func (w *Writer) AppendBytes(b []byte) {
	w.buf = append(w.buf, b...)
}
