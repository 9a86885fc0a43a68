// Copyright 2024 The ACE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command ace-verify loads a schema Model and validates one or more
// instance documents against it (§1: "a thin argument-parsing front-end
// over the library").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.aceconf.dev/ace"
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/acelog"
)

var libraryDirs []string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ace-verify <schema> <instance...>",
		Short: "validate one or more instance documents against a schema model",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runVerify,
	}
	cmd.Flags().StringArrayVarP(&libraryDirs, "library", "L", nil,
		"add a directory to the schema include search path (repeatable)")
	return cmd
}

func runVerify(cmd *cobra.Command, args []string) error {
	log := acelog.Default()
	env := ace.NewEnvironment()
	for _, dir := range libraryDirs {
		env.AddLibraryDir(dir)
	}

	schemaPath := args[0]
	log.Info("loading schema", "path", schemaPath)
	m, list := ace.LoadModel(env, schemaPath)
	if !list.Ok() {
		errors.Print(os.Stderr, list)
		return fmt.Errorf("ace-verify: %s: schema load failed", schemaPath)
	}

	failed := false
	for _, instPath := range args[1:] {
		log.Debug("validating instance", "path", instPath)
		_, list := ace.ValidateFile(m, instPath)
		if !list.Ok() {
			fmt.Fprintf(os.Stderr, "%s: FAIL\n", instPath)
			errors.Print(os.Stderr, list)
			failed = true
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", instPath)
	}
	if failed {
		return fmt.Errorf("ace-verify: one or more instances failed validation")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
