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

//go:build linux
// +build linux

package binder

import (
	"github.com/henrylee2cn/goutil/errors"
	"golang.org/x/sys/unix"
)

// _IOWR('b', 9, struct binder_version)
const binderVersionIoctl = 0xc0046209

// Probe opens dev and returns the binder protocol version of the driver.
func Probe(dev string) (int32, error) {
	fd, err := unix.Open(dev, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return 0, errors.Errorf("binder: open %s: %v", dev, err)
	}
	defer unix.Close(fd)
	ver, err := unix.IoctlGetUint32(fd, binderVersionIoctl)
	if err != nil {
		return 0, errors.Errorf("binder: BINDER_VERSION on %s: %v", dev, err)
	}
	return int32(ver), nil
}
