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

package main

import (
	"github.com/spf13/cobra"
)

func newDecompressCmd(opts *runOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decompress <file|glob>...",
		Aliases: []string{"d"},
		Short:   "Decompress one or more files",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandArgs(args)
			if err != nil {
				return err
			}

			out := newPrinter()
			return runBatch(files, func(path string) error {
				return runDecompressOne(path, *opts, out)
			})
		},
	}

	cmd.Flags().BoolVarP(&opts.stdout, "stdout", "c", false, "write result to standard output")

	return cmd
}
