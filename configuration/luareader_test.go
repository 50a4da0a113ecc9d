// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/searchtree/configuration"
	"github.com/bitmark-inc/searchtree/fault"
)

type pair struct {
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

type testConfig struct {
	Variant string   `gluamapper:"variant"`
	Name    string   `gluamapper:"name"`
	Entries []pair   `gluamapper:"entries"`
	Lookups []string `gluamapper:"lookups"`
}

func writeFile(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600))
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, `
local M = {}
M.variant = "avl"
M.name = arg[0]
M.entries = {
    { key = "10", value = "ten" },
    { key = "20", value = "twenty" },
}
M.lookups = { "10", "99" }
return M
`)

	config := testConfig{Variant: "bst"}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, "avl", config.Variant)
	assert.Equal(t, fileName, config.Name, "arg[0] is the file name")
	assert.Equal(t, []pair{{"10", "ten"}, {"20", "twenty"}}, config.Entries)
	assert.Equal(t, []string{"10", "99"}, config.Lookups)
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, `return { lookups = { "x" } }`)

	config := testConfig{Variant: "bst"}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &config))
	assert.Equal(t, "bst", config.Variant)
	assert.Equal(t, []string{"x"}, config.Lookups)
}

func TestParseErrors(t *testing.T) {
	fileName := writeFile(t, `return 42`)

	config := testConfig{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.True(t, fault.IsErrInvalid(err), "not a table: %v", err)

	err = configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	var s string
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config)
	assert.Error(t, err)

	bad := writeFile(t, `return {`)
	err = configuration.ParseConfigurationFile(bad, &config)
	assert.Error(t, err)
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"))
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"))
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "./x/../log"))
}
