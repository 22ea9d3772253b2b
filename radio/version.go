// Package radio describes the android.hardware.radio HIDL interfaces and
// manages a live IRadio service instance.
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

package radio

import (
	"fmt"
	"strings"
)

// Version is an IRadio interface revision.
type Version int

// Interface revisions.
const (
	V1_0 Version = iota
	V1_1
	V1_2
	V1_3
	V1_4

	// VersionCount is the number of known revisions.
	VersionCount = int(V1_4) + 1
	// MaxVersion is the newest supported revision.
	MaxVersion = V1_4
)

// Name returns the short interface name, e.g. "radio@1.4".
func (v Version) Name() string {
	return fmt.Sprintf("radio@1.%d", int(v))
}

// String implements fmt.Stringer.
func (v Version) String() string {
	return v.Name()
}

// Valid reports whether v is a known revision.
func (v Version) Valid() bool {
	return v >= V1_0 && v <= MaxVersion
}

// Package returns the HIDL package, e.g. "android.hardware.radio@1.4".
func (v Version) Package() string {
	return "android.hardware." + v.Name()
}

// Iface returns the fully qualified name of an interface of this revision.
func (v Version) Iface(name string) string {
	return v.Package() + "::" + name
}

// ParseVersion parses a short interface name such as "radio@1.2".
func ParseVersion(name string) (Version, bool) {
	name = strings.TrimSpace(name)
	for v := V1_0; v <= MaxVersion; v++ {
		if v.Name() == name {
			return v, true
		}
	}
	return MaxVersion, false
}

// Interface names.
const (
	IRadio           = "IRadio"
	IRadioResponse   = "IRadioResponse"
	IRadioIndication = "IRadioIndication"

	OemHookPackage     = "android.hardware.radio.deprecated@1.0"
	IOemHook           = OemHookPackage + "::IOemHook"
	IOemHookResponse   = OemHookPackage + "::IOemHookResponse"
	IOemHookIndication = OemHookPackage + "::IOemHookIndication"
)
