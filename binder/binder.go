// Package binder declares the IPC boundary used to reach HIDL services.
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

package binder

import (
	"sync"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/hidl"
)

// FirstCallTransaction is the code of the first method of an interface.
const FirstCallTransaction uint32 = 1

// Transaction flags.
const (
	FlagOneway uint32 = 0x01
)

// Transaction status returned by a local object handler.
const (
	StatusOK     int32 = 0
	StatusFailed int32 = -2147483648
)

// DefaultDevice is the hwbinder device node.
const DefaultDevice = "/dev/hwbinder"

// ErrDead is returned by a transaction on a dead remote object.
var ErrDead = errors.New("binder: dead object")

// Handler serves one incoming transaction on a local object.
type Handler func(iface string, code uint32, flags uint32, req *hidl.Reader) int32

// LocalObject is a callback object exported to a remote service.
type LocalObject interface {
	// Iface returns the interface the object implements.
	Iface() string
	// Drop stops the object from serving transactions.
	Drop()
}

// RemoteObject is a reference to a service in another process.
type RemoteObject interface {
	// Transact sends a transaction. A oneway transaction returns a nil reply.
	Transact(iface string, code uint32, req *hidl.Parcel, flags uint32) (*hidl.Parcel, error)
	// AddDeathHandler registers fn to run once when the remote dies.
	AddDeathHandler(fn func()) uint64
	// RemoveHandler removes a death handler.
	RemoveHandler(id uint64)
	// IsDead reports whether the remote has died.
	IsDead() bool
}

// ServiceManager resolves services and creates local objects.
type ServiceManager interface {
	// GetService looks up a service by fully qualified name,
	// e.g. "android.hardware.radio@1.4::IRadio/slot1".
	GetService(fqname string) (RemoteObject, error)
	// NewLocalObject exports a new callback object.
	NewLocalObject(iface string, h Handler) LocalObject
}

// Opener creates a ServiceManager for a device node.
type Opener func(dev string) (ServiceManager, error)

var opener = struct {
	sync.RWMutex
	fn Opener
}{fn: openDevice}

// SetOpener replaces the function used by Open.
func SetOpener(fn Opener) {
	if fn == nil {
		return
	}
	opener.Lock()
	opener.fn = fn
	opener.Unlock()
}

// Open returns the service manager of dev.
func Open(dev string) (ServiceManager, error) {
	if dev == "" {
		dev = DefaultDevice
	}
	opener.RLock()
	fn := opener.fn
	opener.RUnlock()
	return fn(dev)
}

func openDevice(dev string) (ServiceManager, error) {
	ver, err := Probe(dev)
	if err != nil {
		return nil, err
	}
	return nil, errors.Errorf("binder: %s speaks protocol %d, no service manager driver is installed", dev, ver)
}
