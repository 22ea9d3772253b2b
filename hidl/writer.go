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

// Writer builds a Parcel.
type Writer struct {
	p Parcel
}

// NewWriter creates an empty parcel writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Parcel returns the parcel built so far.
func (w *Writer) Parcel() *Parcel {
	return &w.p
}

// AppendInt32 appends an inline int32.
func (w *Writer) AppendInt32(v int32) {
	w.AppendUint32(uint32(v))
}

// AppendUint32 appends an inline uint32.
func (w *Writer) AppendUint32(v uint32) {
	w.p.Data = binary.LittleEndian.AppendUint32(w.p.Data, v)
}

// AppendInt64 appends an inline int64.
func (w *Writer) AppendInt64(v int64) {
	w.p.Data = binary.LittleEndian.AppendUint64(w.p.Data, uint64(v))
}

// AppendBool appends an inline bool, padded to four bytes.
func (w *Writer) AppendBool(v bool) {
	var b byte
	if v {
		b = 1
	}
	w.p.Data = append(w.p.Data, b, 0, 0, 0)
}

// AppendBuffer appends a buffer object linked to parent at offset and
// returns its index. Use NoParent for a root buffer.
func (w *Writer) AppendBuffer(data []byte, parent, offset int) int {
	idx := len(w.p.Buffers)
	w.p.Buffers = append(w.p.Buffers, data)
	pos := len(w.p.Data)
	w.p.Data = append(w.p.Data, make([]byte, BufferObjectSize)...)
	putBufferObject(w.p.Data[pos:], bufferObject{
		index:  idx,
		length: len(data),
		parent: parent,
		offset: offset,
	})
	w.p.Offsets = append(w.p.Offsets, pos)
	return idx
}

// AppendLocalObject appends a reference to a local object.
func (w *Writer) AppendLocalObject(obj interface{}) {
	idx := len(w.p.Objects)
	w.p.Objects = append(w.p.Objects, obj)
	pos := len(w.p.Data)
	w.p.Data = append(w.p.Data, make([]byte, FlatObjectSize)...)
	binary.LittleEndian.PutUint32(w.p.Data[pos:], TypeBinder)
	binary.LittleEndian.PutUint64(w.p.Data[pos+8:], uint64(idx))
	w.p.Offsets = append(w.p.Offsets, pos)
}

// AppendString appends a hidl_string with its character buffer.
func (w *Writer) AppendString(s string) {
	hdr := make([]byte, headerSize)
	putHeader(hdr, len(s))
	idx := w.AppendBuffer(hdr, NoParent, 0)
	w.appendChars(s, idx, 0)
}

// AppendStringVec appends a hidl_vec<hidl_string>.
func (w *Writer) AppendStringVec(v []string) {
	w.appendVec(&Field{Kind: KindString}, v, len(v))
}

// AppendByteVec appends a hidl_vec<uint8_t>.
func (w *Writer) AppendByteVec(v []byte) {
	w.appendVec(&Field{Kind: KindU8}, v, len(v))
}

// AppendInt32Vec appends a hidl_vec<int32_t>.
func (w *Writer) AppendInt32Vec(v []int32) {
	w.appendVec(&Field{Kind: KindI32}, v, len(v))
}

// AppendStruct appends v as a root buffer followed by its embedded buffers.
func (w *Writer) AppendStruct(v *Struct) {
	data := make([]byte, v.shape.Size)
	v.put(data, 0)
	idx := w.AppendBuffer(data, NoParent, 0)
	w.appendEmbedded(v, idx, 0)
}

// AppendStructVec appends a hidl_vec of shape elements.
func (w *Writer) AppendStructVec(shape *Shape, v []*Struct) {
	w.appendVec(&Field{Kind: KindStruct, Shape: shape}, v, len(v))
}

func (w *Writer) appendVec(elem *Field, v interface{}, count int) {
	hdr := make([]byte, headerSize)
	putHeader(hdr, count)
	idx := w.AppendBuffer(hdr, NoParent, 0)
	w.appendVecData(elem, v, idx, 0)
}

func (w *Writer) appendChars(s string, parent, offset int) {
	b := make([]byte, len(s)+1)
	copy(b, s)
	w.AppendBuffer(b, parent, offset)
}

func (w *Writer) appendVecData(elem *Field, v interface{}, parent, offset int) {
	size := elem.size()
	switch vv := v.(type) {
	case []byte:
		w.AppendBuffer(append([]byte{}, vv...), parent, offset)
	case []int32:
		b := make([]byte, 0, len(vv)*size)
		for _, i := range vv {
			b = binary.LittleEndian.AppendUint32(b, uint32(i))
		}
		w.AppendBuffer(b, parent, offset)
	case []int64:
		b := make([]byte, 0, len(vv)*size)
		for _, i := range vv {
			b = binary.LittleEndian.AppendUint64(b, uint64(i))
		}
		w.AppendBuffer(b, parent, offset)
	case []string:
		b := make([]byte, len(vv)*size)
		for i, s := range vv {
			putHeader(b[i*size:], len(s))
		}
		idx := w.AppendBuffer(b, parent, offset)
		for i, s := range vv {
			w.appendChars(s, idx, i*size)
		}
	case []*Struct:
		b := make([]byte, len(vv)*size)
		for i, s := range vv {
			s.put(b, i*size)
		}
		idx := w.AppendBuffer(b, parent, offset)
		if elem.Shape.children {
			for i, s := range vv {
				w.appendEmbedded(s, idx, i*size)
			}
		}
	default:
		w.AppendBuffer([]byte{}, parent, offset)
	}
}

func (w *Writer) appendEmbedded(s *Struct, parent, base int) {
	for i := range s.shape.Fields {
		f := &s.shape.Fields[i]
		off := base + f.Offset
		switch f.Kind {
		case KindString:
			w.appendChars(s.vals[i].(string), parent, off)
		case KindVec:
			w.appendVecData(f.Elem, s.vals[i], parent, off)
		case KindStruct:
			if f.Shape.children {
				w.appendEmbedded(s.vals[i].(*Struct), parent, off)
			}
		case KindUnion:
			u := s.vals[i].(*Union)
			if u.Value.shape.children {
				w.appendEmbedded(u.Value, parent, off+f.unionBody())
			}
		}
	}
}

// put writes the fixed part of s into b at base.
func (s *Struct) put(b []byte, base int) {
	for i := range s.shape.Fields {
		f := &s.shape.Fields[i]
		off := base + f.Offset
		switch f.Kind {
		case KindU8, KindBool:
			b[off] = byte(s.vals[i].(int64))
		case KindI32, KindU32:
			binary.LittleEndian.PutUint32(b[off:], uint32(s.vals[i].(int64)))
		case KindI64, KindU64:
			binary.LittleEndian.PutUint64(b[off:], uint64(s.vals[i].(int64)))
		case KindString:
			putHeader(b[off:], len(s.vals[i].(string)))
		case KindVec:
			putHeader(b[off:], vecLen(s.vals[i]))
		case KindStruct:
			s.vals[i].(*Struct).put(b, off)
		case KindUnion:
			u := s.vals[i].(*Union)
			b[off] = u.Tag
			u.Value.put(b, off+f.unionBody())
		}
	}
}

func vecLen(v interface{}) int {
	switch vv := v.(type) {
	case []byte:
		return len(vv)
	case []int32:
		return len(vv)
	case []int64:
		return len(vv)
	case []string:
		return len(vv)
	case []*Struct:
		return len(vv)
	}
	return 0
}

// putHeader fills a hidl_string or hidl_vec header. The pointer is
// resolved by the buffer link, only the length is carried.
func putHeader(b []byte, n int) {
	binary.LittleEndian.PutUint64(b[0:], 0)
	binary.LittleEndian.PutUint32(b[8:], uint32(n))
	b[12] = 0
}
