// Command rilbinder-probe prints the IRadio call coverage of every
// interface revision and checks a binder device node.
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
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/henrylee2cn/rilbinder"
	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/henrylee2cn/rilbinder/table"
)

var (
	tables  = flag.Bool("tables", false, "print the resolved call and event tables")
	verbose = flag.Bool("v", false, "print every table entry")
	dev     = flag.String("dev", "", "binder device node to probe")
	cfgFile = flag.String("config", "", "YAML config file")
	section = flag.String("section", "rilbinder", "config file section")
	level   = flag.String("log", "WARNING", "log level")
)

func main() {
	flag.Parse()
	rilbinder.SetLoggerLevel(*level)

	cfg, err := rilbinder.ConfigFromMap(nil)
	if err != nil {
		rilbinder.Fatalf("%v", err)
	}
	if *cfgFile != "" {
		if cfg, err = rilbinder.LoadConfig(*cfgFile, *section); err != nil {
			rilbinder.Fatalf("%v", err)
		}
	}
	if *dev != "" {
		cfg.Dev = *dev
	}

	if *tables {
		for _, l := range table.Layers() {
			if l.Version <= cfg.Version() {
				printTables(os.Stdout, table.For(l.Version), *verbose)
			}
		}
	}
	if *tables && *dev == "" {
		return
	}
	ver, err := binder.Probe(cfg.Dev)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "%s: %v\n", cfg.Dev, err)
		os.Exit(1)
	}
	fmt.Printf("%s: binder protocol %d, slot %s, up to %s\n", cfg.Dev, ver, cfg.Name, cfg.Version())
}

func printTables(w io.Writer, set *table.Set, verbose bool) {
	reqs, events := set.Requests(), set.Events()
	head := color.New(color.Bold)
	head.Fprintf(w, "%s: %d requests, %d events\n", set.Version(), len(reqs), len(events))
	if !verbose {
		return
	}
	for _, e := range reqs {
		fmt.Fprintf(w, "  %4d %-44s %s\n", e.Code, ril.RequestName(e.Code), e)
	}
	for _, e := range events {
		fmt.Fprintf(w, "  %4d %-44s %s\n", e.Code, ril.UnsolName(e.Code), e)
	}
}
