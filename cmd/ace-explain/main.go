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

// Command ace-explain prints a Model as a tree (§4.H), or the full
// attribute dump of the single field addressed by --path.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.aceconf.dev/ace"
	"go.aceconf.dev/ace/errors"
	"go.aceconf.dev/ace/internal/coach"
)

var (
	libraryDirs []string
	atPath      string
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ace-explain <schema>",
		Short: "render a schema model as a tree, or explain one field at --path",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}
	cmd.Flags().StringArrayVarP(&libraryDirs, "library", "L", nil,
		"add a directory to the schema include search path (repeatable)")
	cmd.Flags().StringVar(&atPath, "path", "",
		"dotted field path to explain instead of printing the whole tree")
	return cmd
}

func runExplain(cmd *cobra.Command, args []string) error {
	env := ace.NewEnvironment()
	for _, dir := range libraryDirs {
		env.AddLibraryDir(dir)
	}

	m, list := ace.LoadModel(env, args[0])
	if !list.Ok() {
		errors.Print(os.Stderr, list)
		return fmt.Errorf("ace-explain: %s: schema load failed", args[0])
	}

	out := cmd.OutOrStdout()
	if atPath != "" {
		return coach.Explain(out, m, atPath)
	}
	coach.Print(out, m)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
