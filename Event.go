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

package zjump

import (
	"fmt"
	"time"
)

// EventType identifies the point in the pipeline an Event was raised from.
const (
	EvtCompressionStart   = 0 // Compression of a file starts
	EvtDecompressionStart = 1 // Decompression of a file starts
	EvtBlockStart         = 2 // A block enters BlockCompressor/BlockDecompressor
	EvtBlockEnd           = 3 // A block leaves BlockCompressor/BlockDecompressor
	EvtCompressionEnd     = 4 // Compression of a file ends
	EvtDecompressionEnd   = 5 // Decompression of a file ends
)

// Event is a compression/decompression progress notification raised by the
// pipeline and consumed by a Listener. The pipeline itself never prints;
// only a Listener implementation (owned by cmd/zjump) does.
type Event struct {
	eventType  int
	blockIndex int
	inSize     int64
	outSize    int64
	eventTime  time.Time
}

// NewEvent creates an Event for the given block (blockIndex is -1 for
// file-level start/end events).
func NewEvent(evtType, blockIndex int, inSize, outSize int64) *Event {
	return &Event{
		eventType:  evtType,
		blockIndex: blockIndex,
		inSize:     inSize,
		outSize:    outSize,
		eventTime:  time.Now(),
	}
}

// Type returns the event type.
func (this *Event) Type() int {
	return this.eventType
}

// BlockIndex returns the 0-based block index, or -1 for file-level events.
func (this *Event) BlockIndex() int {
	return this.blockIndex
}

// InSize returns the number of input bytes this event refers to.
func (this *Event) InSize() int64 {
	return this.inSize
}

// OutSize returns the number of output bytes this event refers to.
func (this *Event) OutSize() int64 {
	return this.outSize
}

// Time returns when the event was raised.
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human readable representation of this event.
func (this *Event) String() string {
	t := ""

	switch this.eventType {
	case EvtCompressionStart:
		t = "COMPRESSION_START"
	case EvtDecompressionStart:
		t = "DECOMPRESSION_START"
	case EvtBlockStart:
		t = "BLOCK_START"
	case EvtBlockEnd:
		t = "BLOCK_END"
	case EvtCompressionEnd:
		t = "COMPRESSION_END"
	case EvtDecompressionEnd:
		t = "DECOMPRESSION_END"
	}

	if this.blockIndex < 0 {
		return fmt.Sprintf("{ \"type\":\"%s\", \"inSize\":%d, \"outSize\":%d }",
			t, this.inSize, this.outSize)
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"block\":%d, \"inSize\":%d, \"outSize\":%d }",
		t, this.blockIndex, this.inSize, this.outSize)
}

// Listener is implemented by event processors such as the CLI's progress
// printer.
type Listener interface {
	// ProcessEvent is called whenever the pipeline raises an event.
	ProcessEvent(evt *Event)
}
