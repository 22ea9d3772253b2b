// Package bindertest provides an in-memory binder service manager.
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

package bindertest

import (
	"sync"

	"github.com/henrylee2cn/goutil/errors"
	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/hidl"
)

// Transaction is one recorded call on a Remote.
type Transaction struct {
	Iface  string
	Code   uint32
	Flags  uint32
	Parcel *hidl.Parcel
}

// Reader returns a reader over the transaction payload.
func (t Transaction) Reader() *hidl.Reader {
	return hidl.NewReader(t.Parcel)
}

// ServiceManager is an in-memory binder.ServiceManager.
type ServiceManager struct {
	mu       sync.Mutex
	services map[string]*Remote
	locals   []*Local
}

var _ binder.ServiceManager = (*ServiceManager)(nil)

// NewServiceManager creates an empty service manager.
func NewServiceManager() *ServiceManager {
	return &ServiceManager{services: make(map[string]*Remote)}
}

// AddService registers a remote under fqname and returns it.
func (sm *ServiceManager) AddService(fqname string) *Remote {
	r := &Remote{Name: fqname, deaths: make(map[uint64]func())}
	sm.mu.Lock()
	sm.services[fqname] = r
	sm.mu.Unlock()
	return r
}

// GetService implements binder.ServiceManager.
func (sm *ServiceManager) GetService(fqname string) (binder.RemoteObject, error) {
	sm.mu.Lock()
	r, ok := sm.services[fqname]
	sm.mu.Unlock()
	if !ok {
		return nil, errors.Errorf("bindertest: no service %s", fqname)
	}
	return r, nil
}

// NewLocalObject implements binder.ServiceManager.
func (sm *ServiceManager) NewLocalObject(iface string, h binder.Handler) binder.LocalObject {
	l := &Local{iface: iface, handler: h}
	sm.mu.Lock()
	sm.locals = append(sm.locals, l)
	sm.mu.Unlock()
	return l
}

// Locals returns every local object created so far.
func (sm *ServiceManager) Locals() []*Local {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return append([]*Local(nil), sm.locals...)
}

// Local is an exported callback object.
type Local struct {
	mu      sync.Mutex
	iface   string
	handler binder.Handler
	dropped bool
}

var _ binder.LocalObject = (*Local)(nil)

// Iface implements binder.LocalObject.
func (l *Local) Iface() string {
	return l.iface
}

// Drop implements binder.LocalObject.
func (l *Local) Drop() {
	l.mu.Lock()
	l.dropped = true
	l.mu.Unlock()
}

// Dropped reports whether Drop was called.
func (l *Local) Dropped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Deliver runs a oneway transaction against the object as the remote
// side would. It returns binder.StatusFailed once the object is dropped.
func (l *Local) Deliver(iface string, code uint32, p *hidl.Parcel) int32 {
	l.mu.Lock()
	h, dropped := l.handler, l.dropped
	l.mu.Unlock()
	if dropped || h == nil {
		return binder.StatusFailed
	}
	return h(iface, code, binder.FlagOneway, hidl.NewReader(p))
}

// Remote is an in-memory remote object that records transactions.
type Remote struct {
	Name string

	mu     sync.Mutex
	txs    []Transaction
	deaths map[uint64]func()
	nextID uint64
	dead   bool
	// Fail, when set, is returned by every Transact call.
	Fail error
	// Reply builds the reply of a two-way transaction.
	Reply func(code uint32) *hidl.Parcel
}

var _ binder.RemoteObject = (*Remote)(nil)

// Transact implements binder.RemoteObject.
func (r *Remote) Transact(iface string, code uint32, req *hidl.Parcel, flags uint32) (*hidl.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dead {
		return nil, binder.ErrDead
	}
	if r.Fail != nil {
		return nil, r.Fail
	}
	r.txs = append(r.txs, Transaction{Iface: iface, Code: code, Flags: flags, Parcel: req})
	if flags&binder.FlagOneway != 0 {
		return nil, nil
	}
	if r.Reply != nil {
		return r.Reply(code), nil
	}
	return hidl.NewParcel(nil), nil
}

// Transactions returns the recorded transactions.
func (r *Remote) Transactions() []Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Transaction(nil), r.txs...)
}

// Last returns the most recent transaction.
func (r *Remote) Last() (Transaction, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.txs) == 0 {
		return Transaction{}, false
	}
	return r.txs[len(r.txs)-1], true
}

// AddDeathHandler implements binder.RemoteObject.
func (r *Remote) AddDeathHandler(fn func()) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.deaths[r.nextID] = fn
	return r.nextID
}

// RemoveHandler implements binder.RemoteObject.
func (r *Remote) RemoveHandler(id uint64) {
	r.mu.Lock()
	delete(r.deaths, id)
	r.mu.Unlock()
}

// IsDead implements binder.RemoteObject.
func (r *Remote) IsDead() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dead
}

// Kill marks the remote dead and runs its death handlers.
func (r *Remote) Kill() {
	r.mu.Lock()
	if r.dead {
		r.mu.Unlock()
		return
	}
	r.dead = true
	fns := make([]func(), 0, len(r.deaths))
	for id := uint64(1); id <= r.nextID; id++ {
		if fn, ok := r.deaths[id]; ok {
			fns = append(fns, fn)
		}
	}
	r.deaths = make(map[uint64]func())
	r.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
