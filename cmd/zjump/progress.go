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
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/schollz/progressbar/v2"

	"github.com/vteromero/zjump"
)

// fileProgress is a zjump.Listener that, at -v/--verbose, drives a
// progressbar/v2 bar from block-level events and prints a per-file summary
// line with a running xxhash of the block events' descriptions (not of the
// block contents); at -vv it also logs one line per block.
type fileProgress struct {
	name    string
	verbose int
	out     *printer
	bar     *progressbar.ProgressBar
	hasher  *xxhash.Digest
	start   time.Time
}

func newFileProgress(name string, size int64, verbose int, out *printer) *fileProgress {
	fp := &fileProgress{name: name, verbose: verbose, out: out, hasher: xxhash.New()}

	if verbose > 0 && size > 0 {
		fp.bar = progressbar.NewOptions64(size,
			progressbar.OptionSetBytes64(size),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetPredictTime(true))
	}

	return fp
}

func (fp *fileProgress) ProcessEvent(evt *zjump.Event) {
	switch evt.Type() {
	case zjump.EvtCompressionStart, zjump.EvtDecompressionStart:
		fp.start = evt.Time()

	case zjump.EvtBlockEnd:
		if fp.bar != nil {
			_ = fp.bar.Add(int(evt.InSize()))
		}
		_, _ = fp.hasher.Write([]byte(evt.String()))

		if fp.verbose >= 2 {
			fp.out.Println(fmt.Sprintf("%s: block %d: %d -> %d bytes",
				fp.name, evt.BlockIndex(), evt.InSize(), evt.OutSize()))
		}

	case zjump.EvtCompressionEnd, zjump.EvtDecompressionEnd:
		if fp.bar != nil {
			_ = fp.bar.Finish()
			fmt.Fprintln(os.Stderr)
		}

		if fp.verbose >= 1 {
			elapsed := evt.Time().Sub(fp.start)
			fp.out.Println(fmt.Sprintf("%s: %d -> %d bytes in %s [%016x]",
				fp.name, evt.InSize(), evt.OutSize(), elapsed.Round(time.Millisecond),
				fp.hasher.Sum64()))
		}
	}
}
