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
	"os"
	"path/filepath"
	"testing"
)

func TestExpandArgsLiteralFile(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := expandArgs([]string{f})
	if err != nil {
		t.Fatalf("expandArgs: %v", err)
	}
	if len(got) != 1 || got[0] != f {
		t.Fatalf("expandArgs = %v, want [%s]", got, f)
	}
}

func TestExpandArgsGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.log", "b.log", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	got, err := expandArgs([]string{filepath.Join(dir, "*.log")})
	if err != nil {
		t.Fatalf("expandArgs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expandArgs matched %d files, want 2: %v", len(got), got)
	}
}

func TestExpandArgsNoMatchIsError(t *testing.T) {
	if _, err := expandArgs([]string{filepath.Join(t.TempDir(), "nope-*.bin")}); err == nil {
		t.Fatal("expected an error when no argument matches any file")
	}
}
