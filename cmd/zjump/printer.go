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
	"bufio"
	"os"
	"sync"
)

// printer is a concurrency-safe line writer shared by the goroutines that
// process one file each in a batch run, so their verbose output doesn't
// interleave mid-line.
type printer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newPrinter() *printer {
	return &printer{w: bufio.NewWriter(os.Stderr)}
}

func (p *printer) Println(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := p.w.WriteString(msg + "\n"); err == nil {
		_ = p.w.Flush()
	}
}
