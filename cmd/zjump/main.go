/*
Copyright 2017-2026 The zjump authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command zjump is the CLI front-end (§6.3): a compress/decompress
// subcommand pair driving package stream over one or more files, with
// glob expansion, bounded concurrency across a batch, and an optional
// progress display.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vteromero/zjump"
)

var showVersion bool

func newRootCmd() *cobra.Command {
	opts := runOptions{}

	root := &cobra.Command{
		Use:           "zjump",
		Short:         "Block-sorting compressor built around the Jump-Sequence Transform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("zjump %d.%02d.%02d\n", zjump.Version/10000, (zjump.Version/100)%100, zjump.Version%100)
				os.Exit(0)
			}
			return nil
		},
		// A runnable root lets PersistentPreRunE see -V without a subcommand.
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVarP(&showVersion, "version", "V", false, "print version and exit")
	root.PersistentFlags().BoolVarP(&opts.force, "force", "f", false, "overwrite existing output file")
	root.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase progress/diagnostic output (repeatable)")

	root.AddCommand(newCompressCmd(&opts))
	root.AddCommand(newDecompressCmd(&opts))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "zjump:", err)
		os.Exit(exitCode(err))
	}
}
