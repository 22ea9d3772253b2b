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

// Struct is a decoded or to-be-encoded value of a Shape.
//
// Integer fields are held as int64, strings as string, struct vectors
// as []*Struct, byte vectors as []byte, int32 and uint32 vectors as
// []int32, string vectors as []string, embedded structs as *Struct and
// unions as *Union.
type Struct struct {
	shape *Shape
	vals  []interface{}
}

// Union is the value of a safe_union field.
type Union struct {
	// Tag is the discriminator, the index into the field's Members.
	Tag   uint8
	Value *Struct
}

// NewStruct returns a zero value of shape.
func NewStruct(shape *Shape) *Struct {
	s := &Struct{shape: shape, vals: make([]interface{}, len(shape.Fields))}
	for i := range shape.Fields {
		s.vals[i] = zeroValue(&shape.Fields[i])
	}
	return s
}

func zeroValue(f *Field) interface{} {
	switch f.Kind {
	case KindString:
		return ""
	case KindVec:
		return zeroVec(f.Elem)
	case KindStruct:
		return NewStruct(f.Shape)
	case KindUnion:
		return &Union{Value: NewStruct(f.Members[0])}
	}
	return int64(0)
}

func zeroVec(elem *Field) interface{} {
	switch elem.Kind {
	case KindU8, KindBool:
		return []byte(nil)
	case KindI32, KindU32:
		return []int32(nil)
	case KindString:
		return []string(nil)
	case KindStruct:
		return []*Struct(nil)
	}
	return []int64(nil)
}

// Shape returns the layout of s.
func (s *Struct) Shape() *Shape {
	return s.shape
}

func (s *Struct) get(name string, kinds ...Kind) interface{} {
	i := s.shape.fieldIndex(name)
	f := &s.shape.Fields[i]
	for _, k := range kinds {
		if f.Kind == k {
			return s.vals[i]
		}
	}
	panic(fmt.Sprintf("hidl: %s.%s is %s", s.shape.Name, name, f.Kind))
}

func (s *Struct) set(name string, v interface{}, kinds ...Kind) *Struct {
	i := s.shape.fieldIndex(name)
	f := &s.shape.Fields[i]
	for _, k := range kinds {
		if f.Kind == k {
			s.vals[i] = v
			return s
		}
	}
	panic(fmt.Sprintf("hidl: %s.%s is %s", s.shape.Name, name, f.Kind))
}

var intKinds = []Kind{KindU8, KindBool, KindI32, KindU32, KindI64, KindU64}

// Int returns an integer field.
func (s *Struct) Int(name string) int64 {
	return s.get(name, intKinds...).(int64)
}

// Int32 returns an integer field truncated to int32.
func (s *Struct) Int32(name string) int32 {
	return int32(s.Int(name))
}

// Uint32 returns an integer field truncated to uint32.
func (s *Struct) Uint32(name string) uint32 {
	return uint32(s.Int(name))
}

// Bool returns whether an integer field is non-zero.
func (s *Struct) Bool(name string) bool {
	return s.Int(name) != 0
}

// Str returns a string field.
func (s *Struct) Str(name string) string {
	return s.get(name, KindString).(string)
}

// Struct returns an embedded struct field.
func (s *Struct) Struct(name string) *Struct {
	return s.get(name, KindStruct).(*Struct)
}

// Union returns a safe_union field.
func (s *Struct) Union(name string) *Union {
	return s.get(name, KindUnion).(*Union)
}

// Structs returns a vector of structs.
func (s *Struct) Structs(name string) []*Struct {
	v, _ := s.get(name, KindVec).([]*Struct)
	return v
}

// Strings returns a vector of strings.
func (s *Struct) Strings(name string) []string {
	v, _ := s.get(name, KindVec).([]string)
	return v
}

// Bytes returns a vector of uint8.
func (s *Struct) Bytes(name string) []byte {
	v, _ := s.get(name, KindVec).([]byte)
	return v
}

// Int32s returns a vector of int32 or uint32.
func (s *Struct) Int32s(name string) []int32 {
	v, _ := s.get(name, KindVec).([]int32)
	return v
}

// SetInt sets an integer field.
func (s *Struct) SetInt(name string, v int64) *Struct {
	return s.set(name, v, intKinds...)
}

// SetBool sets an integer field to 1 or 0.
func (s *Struct) SetBool(name string, v bool) *Struct {
	var i int64
	if v {
		i = 1
	}
	return s.set(name, i, intKinds...)
}

// SetStr sets a string field.
func (s *Struct) SetStr(name string, v string) *Struct {
	return s.set(name, v, KindString)
}

// SetStruct sets an embedded struct field.
func (s *Struct) SetStruct(name string, v *Struct) *Struct {
	return s.set(name, v, KindStruct)
}

// SetUnion sets a safe_union field to member tag.
func (s *Struct) SetUnion(name string, tag uint8, v *Struct) *Struct {
	return s.set(name, &Union{Tag: tag, Value: v}, KindUnion)
}

// SetStructs sets a vector of structs.
func (s *Struct) SetStructs(name string, v []*Struct) *Struct {
	return s.set(name, v, KindVec)
}

// SetStrings sets a vector of strings.
func (s *Struct) SetStrings(name string, v []string) *Struct {
	return s.set(name, v, KindVec)
}

// SetBytes sets a vector of uint8.
func (s *Struct) SetBytes(name string, v []byte) *Struct {
	return s.set(name, v, KindVec)
}

// SetInt32s sets a vector of int32 or uint32.
func (s *Struct) SetInt32s(name string, v []int32) *Struct {
	return s.set(name, v, KindVec)
}
