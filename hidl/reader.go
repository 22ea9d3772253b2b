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
)

// Reader reads values from a Parcel in the order they were written.
type Reader struct {
	p   *Parcel
	pos int
}

// NewReader creates a reader over p.
func NewReader(p *Parcel) *Reader {
	return &Reader{p: p}
}

// Copy returns an independent reader at the same position.
func (r *Reader) Copy() *Reader {
	c := *r
	return &c
}

// AtEnd reports whether the inline data is exhausted.
func (r *Reader) AtEnd() bool {
	return r.pos >= len(r.p.Data)
}

func (r *Reader) next(n int) ([]byte, error) {
	if len(r.p.Data)-r.pos < n {
		return nil, ErrShortParcel
	}
	b := r.p.Data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadInt32 reads an inline int32.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads an inline uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadInt64 reads an inline int64.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// ReadBool reads an inline four byte bool.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint32()
	return v != 0, err
}

// ReadObject reads a local object reference.
func (r *Reader) ReadObject() (interface{}, error) {
	if len(r.p.Data)-r.pos < FlatObjectSize {
		return nil, ErrShortParcel
	}
	b := r.p.Data[r.pos:]
	if binary.LittleEndian.Uint32(b) != TypeBinder {
		return nil, ErrNoObject
	}
	idx := int(binary.LittleEndian.Uint64(b[8:]))
	if idx < 0 || idx >= len(r.p.Objects) {
		return nil, ErrNoObject
	}
	r.pos += FlatObjectSize
	return r.p.Objects[idx], nil
}

// readBuffer reads the next buffer object and checks its link.
func (r *Reader) readBuffer(parent, offset int) (int, []byte, error) {
	if len(r.p.Data)-r.pos < BufferObjectSize {
		return 0, nil, ErrShortParcel
	}
	o, ok := getBufferObject(r.p.Data[r.pos:])
	if !ok || o.index < 0 || o.index >= len(r.p.Buffers) {
		return 0, nil, ErrNoBuffer
	}
	if o.parent != parent || (parent != NoParent && o.offset != offset) {
		return 0, nil, ErrBadParent
	}
	data := r.p.Buffers[o.index]
	if len(data) != o.length {
		return 0, nil, ErrSizeMismatch
	}
	r.pos += BufferObjectSize
	return o.index, data, nil
}

func (r *Reader) readHeader() (int, int, error) {
	idx, hdr, err := r.readBuffer(NoParent, 0)
	if err != nil {
		return 0, 0, err
	}
	if len(hdr) != headerSize {
		return 0, 0, ErrSizeMismatch
	}
	return idx, int(binary.LittleEndian.Uint32(hdr[8:])), nil
}

// ReadString reads a hidl_string.
func (r *Reader) ReadString() (string, error) {
	idx, n, err := r.readHeader()
	if err != nil {
		return "", err
	}
	return r.readChars(n, idx, 0)
}

// ReadStringVec reads a hidl_vec<hidl_string>.
func (r *Reader) ReadStringVec() ([]string, error) {
	v, err := r.readVec(&Field{Kind: KindString})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// ReadByteVec reads a hidl_vec<uint8_t>.
func (r *Reader) ReadByteVec() ([]byte, error) {
	v, err := r.readVec(&Field{Kind: KindU8})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// ReadInt32Vec reads a hidl_vec<int32_t>.
func (r *Reader) ReadInt32Vec() ([]int32, error) {
	v, err := r.readVec(&Field{Kind: KindI32})
	if err != nil {
		return nil, err
	}
	return v.([]int32), nil
}

// ReadStruct reads a root struct of shape, failing with ErrSizeMismatch
// if the buffer does not have exactly the shape's size.
func (r *Reader) ReadStruct(shape *Shape) (*Struct, error) {
	idx, data, err := r.readBuffer(NoParent, 0)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.Size {
		return nil, ErrSizeMismatch
	}
	s := NewStruct(shape)
	if err = r.readFields(s, data, 0, idx); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadStructVec reads a hidl_vec of shape elements. The element buffer
// size must equal count times the shape's size.
func (r *Reader) ReadStructVec(shape *Shape) ([]*Struct, error) {
	v, err := r.readVec(&Field{Kind: KindStruct, Shape: shape})
	if err != nil {
		return nil, err
	}
	return v.([]*Struct), nil
}

func (r *Reader) readVec(elem *Field) (interface{}, error) {
	idx, n, err := r.readHeader()
	if err != nil {
		return nil, err
	}
	return r.readVecData(elem, n, idx, 0)
}

func (r *Reader) readChars(n, parent, offset int) (string, error) {
	_, b, err := r.readBuffer(parent, offset)
	if err != nil {
		return "", err
	}
	if len(b) != n+1 {
		return "", ErrSizeMismatch
	}
	return string(b[:n]), nil
}

func (r *Reader) readVecData(elem *Field, n, parent, offset int) (interface{}, error) {
	size := elem.size()
	idx, b, err := r.readBuffer(parent, offset)
	if err != nil {
		return nil, err
	}
	if len(b) != n*size {
		return nil, ErrSizeMismatch
	}
	switch elem.Kind {
	case KindU8, KindBool:
		return append([]byte{}, b...), nil
	case KindI32, KindU32:
		v := make([]int32, n)
		for i := range v {
			v[i] = int32(binary.LittleEndian.Uint32(b[i*size:]))
		}
		return v, nil
	case KindI64, KindU64:
		v := make([]int64, n)
		for i := range v {
			v[i] = int64(binary.LittleEndian.Uint64(b[i*size:]))
		}
		return v, nil
	case KindString:
		v := make([]string, n)
		for i := range v {
			l := int(binary.LittleEndian.Uint32(b[i*size+8:]))
			if v[i], err = r.readChars(l, idx, i*size); err != nil {
				return nil, err
			}
		}
		return v, nil
	}
	v := make([]*Struct, n)
	for i := range v {
		v[i] = NewStruct(elem.Shape)
		if err = r.readFields(v[i], b, i*size, idx); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// readFields decodes the fields of s from b at base, reading embedded
// buffers linked to the buffer parent as they are reached.
func (r *Reader) readFields(s *Struct, b []byte, base, parent int) error {
	for i := range s.shape.Fields {
		f := &s.shape.Fields[i]
		off := base + f.Offset
		switch f.Kind {
		case KindU8, KindBool:
			s.vals[i] = int64(b[off])
		case KindI32:
			s.vals[i] = int64(int32(binary.LittleEndian.Uint32(b[off:])))
		case KindU32:
			s.vals[i] = int64(binary.LittleEndian.Uint32(b[off:]))
		case KindI64, KindU64:
			s.vals[i] = int64(binary.LittleEndian.Uint64(b[off:]))
		case KindString:
			n := int(binary.LittleEndian.Uint32(b[off+8:]))
			v, err := r.readChars(n, parent, off)
			if err != nil {
				return err
			}
			s.vals[i] = v
		case KindVec:
			n := int(binary.LittleEndian.Uint32(b[off+8:]))
			v, err := r.readVecData(f.Elem, n, parent, off)
			if err != nil {
				return err
			}
			s.vals[i] = v
		case KindStruct:
			sub := NewStruct(f.Shape)
			if err := r.readFields(sub, b, off, parent); err != nil {
				return err
			}
			s.vals[i] = sub
		case KindUnion:
			tag := b[off]
			if int(tag) >= len(f.Members) {
				return ErrBadUnion
			}
			sub := NewStruct(f.Members[tag])
			if err := r.readFields(sub, b, off+f.unionBody(), parent); err != nil {
				return err
			}
			s.vals[i] = &Union{Tag: tag, Value: sub}
		}
	}
	return nil
}
