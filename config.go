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

package rilbinder

import (
	"strings"

	"github.com/henrylee2cn/cfgo"
	"github.com/henrylee2cn/goutil/errors"
	"github.com/tidwall/gjson"

	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/radio"
)

// Config keys understood by the binder transport.
const (
	KeyModem     = "modem"
	KeyDev       = "dev"
	KeyName      = "name"
	KeyInterface = "interface"
)

// Config defaults.
const (
	DefaultModem = "/ril_0"
	DefaultDev   = binder.DefaultDevice
	DefaultName  = "slot1"
)

// Config transport config
// Note:
//  yaml tag is used for github.com/henrylee2cn/cfgo
//  ini tag is used for github.com/henrylee2cn/ini
type Config struct {
	Modem     string `yaml:"modem"     ini:"modem"     comment:"Logical modem path"`
	Dev       string `yaml:"dev"       ini:"dev"       comment:"Binder device node"`
	Name      string `yaml:"name"      ini:"name"      comment:"IRadio service instance name"`
	Interface string `yaml:"interface" ini:"interface" comment:"Highest IRadio revision to negotiate, e.g. radio@1.2; empty for the newest"`
}

var _ cfgo.Config = new(Config)

// Reload Bi-directionally synchronizes config between YAML file and memory.
func (c *Config) Reload(bind cfgo.BindFunc) error {
	err := bind()
	if err != nil {
		return err
	}
	return c.check()
}

func (c *Config) check() error {
	c.Modem = strings.TrimSpace(c.Modem)
	c.Dev = strings.TrimSpace(c.Dev)
	c.Name = strings.TrimSpace(c.Name)
	if c.Modem == "" {
		c.Modem = DefaultModem
	}
	if c.Dev == "" {
		c.Dev = DefaultDev
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	if strings.ContainsAny(c.Name, "/ ") {
		return errors.Errorf("invalid service instance name: %q", c.Name)
	}
	if c.Interface != "" {
		if _, ok := radio.ParseVersion(c.Interface); !ok {
			Warnf("unknown interface %q, using %s", c.Interface, radio.MaxVersion)
		}
	}
	return nil
}

// Version returns the highest IRadio revision the transport may negotiate.
// Unknown names fall back to the newest revision.
func (c *Config) Version() radio.Version {
	if c.Interface == "" {
		return radio.MaxVersion
	}
	v, _ := radio.ParseVersion(c.Interface)
	return v
}

// ConfigFromMap builds a Config from the host's key/value transport
// arguments. Unknown keys are ignored.
func ConfigFromMap(args map[string]string) (*Config, error) {
	c := &Config{
		Modem:     args[KeyModem],
		Dev:       args[KeyDev],
		Name:      args[KeyName],
		Interface: args[KeyInterface],
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// ConfigFromJSON builds a Config from a JSON object holding the same keys
// as ConfigFromMap.
func ConfigFromJSON(b []byte) (*Config, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.New("invalid transport config JSON")
	}
	res := gjson.GetManyBytes(b, KeyModem, KeyDev, KeyName, KeyInterface)
	return ConfigFromMap(map[string]string{
		KeyModem:     res[0].String(),
		KeyDev:       res[1].String(),
		KeyName:      res[2].String(),
		KeyInterface: res[3].String(),
	})
}

// LoadConfig binds section of a YAML config file to a Config.
// A missing file is created with the defaults.
func LoadConfig(file, section string) (*Config, error) {
	c := new(Config)
	if err := cfgo.MustGet(file, true).Reg(section, c); err != nil {
		return nil, err
	}
	return c, nil
}
