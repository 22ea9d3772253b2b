// Package hidl models HIDL binder parcels: inline scalars, linked
// out-of-line buffers and local objects, plus explicit struct schemas.
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

package hidl

import (
	"encoding/binary"

	"github.com/henrylee2cn/goutil/errors"
)

// Binder object types as written into the parcel data.
const (
	TypePtr    uint32 = 0x70742a85
	TypeBinder uint32 = 0x73622a85
)

const (
	flagHasParent uint32 = 0x01

	// BufferObjectSize is the inline size of a buffer object.
	BufferObjectSize = 40
	// FlatObjectSize is the inline size of a local object reference.
	FlatObjectSize = 24

	// NoParent marks a root buffer.
	NoParent = -1
)

var (
	// ErrShortParcel is returned when the parcel data ends before a value.
	ErrShortParcel = errors.New("hidl: short parcel")
	// ErrNoBuffer is returned when a buffer object was expected but not found.
	ErrNoBuffer = errors.New("hidl: buffer object expected")
	// ErrBadParent is returned when a child buffer is not linked where expected.
	ErrBadParent = errors.New("hidl: buffer parent mismatch")
	// ErrSizeMismatch is returned when a buffer size differs from its schema.
	ErrSizeMismatch = errors.New("hidl: buffer size mismatch")
	// ErrNoObject is returned when a local object was expected but not found.
	ErrNoObject = errors.New("hidl: object expected")
	// ErrBadUnion is returned for an out of range safe_union discriminator.
	ErrBadUnion = errors.New("hidl: bad safe_union discriminator")
)

// Parcel is one binder transaction payload.
type Parcel struct {
	// Data is the inline stream. Buffer and object records live here too.
	Data []byte
	// Offsets holds the position in Data of every object record.
	Offsets []int
	// Buffers holds the out-of-line buffer contents by buffer index.
	Buffers [][]byte
	// Objects holds the local objects by object index.
	Objects []interface{}
}

// NewParcel wraps inline bytes with no objects.
func NewParcel(data []byte) *Parcel {
	return &Parcel{Data: data}
}

// Size returns the total number of bytes carried by the parcel.
func (p *Parcel) Size() int {
	n := len(p.Data)
	for _, b := range p.Buffers {
		n += len(b)
	}
	return n
}

// buffer object record layout
//  0: type u32
//  4: flags u32
//  8: buffer index u64
// 16: length u64
// 24: parent index u64
// 32: parent offset u64
type bufferObject struct {
	index  int
	length int
	parent int
	offset int
}

func putBufferObject(b []byte, o bufferObject) {
	var flags uint32
	parent := uint64(0)
	if o.parent != NoParent {
		flags = flagHasParent
		parent = uint64(o.parent)
	}
	binary.LittleEndian.PutUint32(b[0:], TypePtr)
	binary.LittleEndian.PutUint32(b[4:], flags)
	binary.LittleEndian.PutUint64(b[8:], uint64(o.index))
	binary.LittleEndian.PutUint64(b[16:], uint64(o.length))
	binary.LittleEndian.PutUint64(b[24:], parent)
	binary.LittleEndian.PutUint64(b[32:], uint64(o.offset))
}

func getBufferObject(b []byte) (bufferObject, bool) {
	if binary.LittleEndian.Uint32(b[0:]) != TypePtr {
		return bufferObject{}, false
	}
	o := bufferObject{
		index:  int(binary.LittleEndian.Uint64(b[8:])),
		length: int(binary.LittleEndian.Uint64(b[16:])),
		parent: NoParent,
		offset: int(binary.LittleEndian.Uint64(b[32:])),
	}
	if binary.LittleEndian.Uint32(b[4:])&flagHasParent != 0 {
		o.parent = int(binary.LittleEndian.Uint64(b[24:]))
	}
	return o, true
}
