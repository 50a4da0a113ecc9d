// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/cockroachdb/errors"

	"github.com/bitmark-inc/searchtree/configuration"
	"github.com/bitmark-inc/searchtree/fault"
)

// basic defaults (directories are relative to the configuration file)
const (
	defaultVariant = variantAVL

	defaultLogDirectory = "log"
	defaultLogFile      = "treeload.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// the tree variants
const (
	variantAVL = "avl"
	variantBST = "bst"
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Entry - one key and its value
type Entry struct {
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

type Configuration struct {
	Variant string               `gluamapper:"variant" json:"variant"`
	Entries []Entry              `gluamapper:"entries" json:"entries"`
	Updates []Entry              `gluamapper:"updates" json:"updates"`
	Lookups []string             `gluamapper:"lookups" json:"lookups"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Variant: defaultVariant,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Variant = strings.ToLower(options.Variant)
	switch options.Variant {
	case variantAVL, variantBST:
	default:
		return nil, errors.Wrapf(fault.ErrUnknownVariant, "variant: %q", options.Variant)
	}

	// the log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, errors.Newf("log file: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = configuration.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
