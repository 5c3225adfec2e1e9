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
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vteromero/zjump"
	"github.com/vteromero/zjump/stream"
)

// runOptions carries the flags shared by the compress and decompress
// subcommands (§6.3 plus the AMBIENT multi-file/verbose additions).
type runOptions struct {
	force   bool
	stdout  bool
	verbose int
}

const zjumpSuffix = ".zjump"

func compressedName(path string) string {
	return path + zjumpSuffix
}

func decompressedName(path string) string {
	if strings.HasSuffix(path, zjumpSuffix) {
		return strings.TrimSuffix(path, zjumpSuffix)
	}
	return path + ".orig"
}

// openOutput opens dst for writing, honoring --force/--stdout and refusing
// to clobber an existing file otherwise.
func openOutput(dst string, opts runOptions) (*os.File, func(), error) {
	if opts.stdout {
		return os.Stdout, func() {}, nil
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(dst, flags, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, nil, fmt.Errorf("%s already exists (use -f/--force to overwrite)", dst)
		}
		return nil, nil, zjump.NewError(zjump.KindFile, err)
	}

	return f, func() { _ = f.Close() }, nil
}

func runCompressOne(path string, opts runOptions, out *printer) error {
	fi, err := os.Stat(path)
	if err != nil {
		return zjump.NewError(zjump.KindFile, err)
	}

	// §8 edge case #1: an empty input produces no output and exits cleanly
	// rather than writing a zero-block (and therefore invalid) container.
	if fi.Size() == 0 {
		if opts.verbose >= 1 {
			out.Println(fmt.Sprintf("%s: empty input, nothing to do", path))
		}
		return nil
	}

	in, err := os.Open(path)
	if err != nil {
		return zjump.NewError(zjump.KindFile, err)
	}
	defer in.Close()

	dst := compressedName(path)
	if opts.stdout {
		dst = "(stdout)"
	}

	w, closeW, err := openOutput(compressedName(path), opts)
	if err != nil {
		return err
	}
	defer closeW()

	comp := stream.NewCompressor()
	comp.AddListener(newFileProgress(dst, fi.Size(), opts.verbose, out))

	_, _, err = comp.Compress(in, w)
	return err
}

func runDecompressOne(path string, opts runOptions, out *printer) error {
	in, err := os.Open(path)
	if err != nil {
		return zjump.NewError(zjump.KindFile, err)
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return zjump.NewError(zjump.KindFile, err)
	}

	dst := decompressedName(path)
	if opts.stdout {
		dst = "(stdout)"
	}

	w, closeW, err := openOutput(decompressedName(path), opts)
	if err != nil {
		return err
	}
	defer closeW()

	decomp := stream.NewDecompressor()
	decomp.AddListener(newFileProgress(dst, fi.Size(), opts.verbose, out))

	_, _, err = decomp.Decompress(in, w)
	return err
}

// runBatch runs worker over every path in files, bounded to GOMAXPROCS
// concurrent files at a time (§6.3 AMBIENT note: multi-file arguments),
// the way the teacher's file-list mode fans a batch of files out to a
// worker pool sized by the host's CPU count.
func runBatch(files []string, worker func(string) error) error {
	if len(files) == 1 {
		return worker(files[0])
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, f := range files {
		f := f
		g.Go(func() error {
			if err := worker(f); err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// exitCode maps a zjump error onto a process exit status, one non-zero
// value per ErrorKind, the way the teacher maps each of its ERR_* sentinels
// to a distinct exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var kind zjump.ErrorKind
	if zjump.As(err, &kind) {
		return int(kind) + 2
	}

	return 1
}
