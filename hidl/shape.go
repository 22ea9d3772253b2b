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
	"fmt"
)

// Kind is the wire kind of a struct field.
type Kind uint8

// Field kinds.
const (
	KindU8 Kind = iota
	KindBool
	KindI32
	KindU32
	KindI64
	KindU64
	KindString
	KindVec
	KindStruct
	KindUnion
)

var kindNames = [...]string{"u8", "bool", "i32", "u32", "i64", "u64", "string", "vec", "struct", "safe_union"}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Size of a hidl_string or hidl_vec header.
const headerSize = 16

// Field is one member of a Shape. Offset is filled in by NewShape.
type Field struct {
	Name   string
	Kind   Kind
	Offset int
	// Elem describes the element of a KindVec field.
	Elem *Field
	// Shape describes a KindStruct field.
	Shape *Shape
	// Members lists the alternatives of a KindUnion field.
	Members []*Shape
}

// U8 declares a uint8 field.
func U8(name string) Field { return Field{Name: name, Kind: KindU8} }

// Bool declares a one byte boolean field.
func Bool(name string) Field { return Field{Name: name, Kind: KindBool} }

// I32 declares an int32 field.
func I32(name string) Field { return Field{Name: name, Kind: KindI32} }

// U32 declares a uint32 field.
func U32(name string) Field { return Field{Name: name, Kind: KindU32} }

// I64 declares an int64 field.
func I64(name string) Field { return Field{Name: name, Kind: KindI64} }

// U64 declares a uint64 field.
func U64(name string) Field { return Field{Name: name, Kind: KindU64} }

// Str declares a hidl_string field.
func Str(name string) Field { return Field{Name: name, Kind: KindString} }

// Inline declares an embedded struct field.
func Inline(name string, shape *Shape) Field {
	return Field{Name: name, Kind: KindStruct, Shape: shape}
}

// Vec declares a hidl_vec of structs.
func Vec(name string, elem *Shape) Field {
	return Field{Name: name, Kind: KindVec, Elem: &Field{Kind: KindStruct, Shape: elem}}
}

// ScalarVec declares a hidl_vec of scalars or strings.
func ScalarVec(name string, elem Kind) Field {
	if elem == KindVec || elem == KindStruct || elem == KindUnion {
		panic("hidl: ScalarVec needs a scalar or string element")
	}
	return Field{Name: name, Kind: KindVec, Elem: &Field{Kind: elem}}
}

// SafeUnion declares a discriminated union. The u8 discriminator comes
// first, the active member follows at the members' alignment.
func SafeUnion(name string, members ...*Shape) Field {
	return Field{Name: name, Kind: KindUnion, Members: members}
}

func (f *Field) size() int {
	switch f.Kind {
	case KindU8, KindBool:
		return 1
	case KindI32, KindU32:
		return 4
	case KindI64, KindU64:
		return 8
	case KindString, KindVec:
		return headerSize
	case KindStruct:
		return f.Shape.Size
	case KindUnion:
		return alignUp(f.unionBody()+f.unionSize(), f.align())
	}
	panic("hidl: unknown field kind " + f.Kind.String())
}

func (f *Field) align() int {
	switch f.Kind {
	case KindU8, KindBool:
		return 1
	case KindI32, KindU32:
		return 4
	case KindStruct:
		return f.Shape.Align
	case KindUnion:
		return f.unionAlign()
	}
	return 8
}

func (f *Field) unionAlign() int {
	a := 1
	for _, m := range f.Members {
		if m.Align > a {
			a = m.Align
		}
	}
	return a
}

func (f *Field) unionSize() int {
	n := 0
	for _, m := range f.Members {
		if m.Size > n {
			n = m.Size
		}
	}
	return n
}

// unionBody returns the offset of the active member inside the union.
func (f *Field) unionBody() int {
	return alignUp(1, f.unionAlign())
}

// hasChildren reports whether values of this field own out-of-line buffers.
func (f *Field) hasChildren() bool {
	switch f.Kind {
	case KindString, KindVec:
		return true
	case KindStruct:
		return f.Shape.children
	case KindUnion:
		for _, m := range f.Members {
			if m.children {
				return true
			}
		}
	}
	return false
}

// Shape is the explicit layout of one HIDL struct.
type Shape struct {
	Name   string
	Fields []Field
	Size   int
	Align  int

	index    map[string]int
	children bool
}

// NewShape lays out fields with natural alignment and panics unless the
// resulting size equals size.
func NewShape(name string, size int, fields ...Field) *Shape {
	s := &Shape{
		Name:   name,
		Fields: fields,
		Align:  1,
		index:  make(map[string]int, len(fields)),
	}
	off := 0
	for i := range s.Fields {
		f := &s.Fields[i]
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("hidl: %s: duplicate field %q", name, f.Name))
		}
		s.index[f.Name] = i
		a := f.align()
		if a > s.Align {
			s.Align = a
		}
		off = alignUp(off, a)
		f.Offset = off
		off += f.size()
		if f.hasChildren() {
			s.children = true
		}
	}
	s.Size = alignUp(off, s.Align)
	if s.Size != size {
		panic(fmt.Sprintf("hidl: %s: computed size %d, declared %d", name, s.Size, size))
	}
	return s
}

// Field returns the named field, panicking if it does not exist.
func (s *Shape) Field(name string) *Field {
	return &s.Fields[s.fieldIndex(name)]
}

func (s *Shape) fieldIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("hidl: %s has no field %q", s.Name, name))
	}
	return i
}

// String returns the shape name and size.
func (s *Shape) String() string {
	return fmt.Sprintf("%s(%d)", s.Name, s.Size)
}

func alignUp(n, a int) int {
	return (n + a - 1) / a * a
}
