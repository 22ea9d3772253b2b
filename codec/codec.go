// Package codec translates legacy RIL request arguments into IRadio
// parcels and IRadio replies back into legacy RIL payloads.
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
//
package codec

import (
	"fmt"
	"sort"

	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/wire"
)

// Encoder parses the legacy arguments of one request and writes the
// IRadio call arguments, starting with serial.
// Nothing is sent if it returns an error.
type Encoder func(serial int32, args *wire.Parser, w *hidl.Writer) error

// Decoder reads the IRadio reply arguments and writes the legacy payload.
// On error out must be discarded.
type Decoder func(r *hidl.Reader, out *wire.Writer) error

var codecMap = struct {
	encoders map[string]Encoder
	decoders map[string]Decoder
}{
	encoders: make(map[string]Encoder),
	decoders: make(map[string]Decoder),
}

// RegEncoder registers an encoder under name.
func RegEncoder(name string, enc Encoder) {
	if name == "" || enc == nil {
		panic("codec: empty encoder registration")
	}
	if _, ok := codecMap.encoders[name]; ok {
		panic("multi-register encoder: " + name)
	}
	codecMap.encoders[name] = enc
}

// RegDecoder registers a decoder under name.
func RegDecoder(name string, dec Decoder) {
	if name == "" || dec == nil {
		panic("codec: empty decoder registration")
	}
	if _, ok := codecMap.decoders[name]; ok {
		panic("multi-register decoder: " + name)
	}
	codecMap.decoders[name] = dec
}

// GetEncoder returns the encoder registered under name.
func GetEncoder(name string) (Encoder, error) {
	enc, ok := codecMap.encoders[name]
	if !ok {
		return nil, fmt.Errorf("unsupported encoder: %s", name)
	}
	return enc, nil
}

// GetDecoder returns the decoder registered under name.
func GetDecoder(name string) (Decoder, error) {
	dec, ok := codecMap.decoders[name]
	if !ok {
		return nil, fmt.Errorf("unsupported decoder: %s", name)
	}
	return dec, nil
}

// Encoders returns the sorted encoder names.
func Encoders() []string {
	names := make([]string, 0, len(codecMap.encoders))
	for name := range codecMap.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decoders returns the sorted decoder names.
func Decoders() []string {
	names := make([]string, 0, len(codecMap.decoders))
	for name := range codecMap.decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode runs the encoder registered under name.
func Encode(name string, serial int32, data []byte) (*hidl.Parcel, error) {
	enc, err := GetEncoder(name)
	if err != nil {
		return nil, err
	}
	w := hidl.NewWriter()
	if err = enc(serial, wire.NewParser(data), w); err != nil {
		return nil, err
	}
	return w.Parcel(), nil
}

// Decode runs the decoder registered under name.
func Decode(name string, p *hidl.Parcel) ([]byte, error) {
	dec, err := GetDecoder(name)
	if err != nil {
		return nil, err
	}
	out := wire.NewWriter()
	if err = dec(hidl.NewReader(p), out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
