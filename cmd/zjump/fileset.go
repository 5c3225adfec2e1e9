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
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// expandArgs turns the positional command-line arguments into a sorted,
// deduplicated list of regular file paths. Each argument is tried first as
// a doublestar glob (so "data/*.txt" and "**/*.log" both work); an argument
// that matches nothing as a glob and names a plain regular file is kept
// as-is, the way a literal filename with no special characters would be.
func expandArgs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}

		if len(matches) == 0 {
			if fi, err := os.Stat(arg); err == nil && fi.Mode().IsRegular() {
				matches = []string{arg}
			}
		}

		for _, m := range matches {
			fi, err := os.Stat(m)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	sort.Strings(out)

	if len(out) == 0 {
		return nil, fmt.Errorf("no input file matched %v", args)
	}

	return out, nil
}
