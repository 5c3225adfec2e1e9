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

// Package stream implements the multi-block container (§6.1): a 2-byte
// LE block count, back-patched once the final count is known, followed
// by one [3-byte LE length][payload] entry per block. Compressor and
// Decompressor drive package codec's per-block pipeline over a whole
// file, raising Event notifications for any registered Listener the way
// the teacher's CompressedOutputStream/CompressedInputStream do.
package stream

import (
	"encoding/binary"
	"io"

	"github.com/vteromero/zjump"
	"github.com/vteromero/zjump/codec"
)

// Compressor drives CompressBlock over an input stream, one block at a
// time, and frames the result per §6.1.
type Compressor struct {
	listeners []zjump.Listener
}

// NewCompressor creates an empty Compressor.
func NewCompressor() *Compressor {
	return &Compressor{}
}

// AddListener registers l to receive Event notifications.
func (c *Compressor) AddListener(l zjump.Listener) bool {
	if l == nil {
		return false
	}
	c.listeners = append(c.listeners, l)
	return true
}

func (c *Compressor) notify(evt *zjump.Event) {
	for _, l := range c.listeners {
		l.ProcessEvent(evt)
	}
}

// Compress reads all of r in MaxExpandedBlockSize chunks, compresses each
// one, and writes the framed result to w. w must implement io.Seeker so
// the block count placeholder can be back-patched once known; a
// non-seekable w is a KindFile error, since the count must precede the
// blocks it counts.
func (c *Compressor) Compress(r io.Reader, w io.Writer) (read int64, written int64, err error) {
	seeker, ok := w.(io.Seeker)
	if !ok {
		return 0, 0, zjump.NewError(zjump.KindFile, nil)
	}

	c.notify(zjump.NewEvent(zjump.EvtCompressionStart, -1, 0, 0))

	var countBuf [zjump.NumBlocksFieldSize / 8]byte
	if _, err := w.Write(countBuf[:]); err != nil {
		return 0, 0, zjump.NewError(zjump.KindFile, err)
	}
	written += int64(len(countBuf))

	buf := make([]byte, zjump.MaxExpandedBlockSize)
	numBlocks := 0

	for {
		n, rerr := io.ReadFull(r, buf)
		if n > 0 {
			c.notify(zjump.NewEvent(zjump.EvtBlockStart, numBlocks, int64(n), 0))

			payload, cerr := codec.CompressBlock(buf[:n])
			if cerr != nil {
				return read, written, cerr
			}

			var lenBuf [zjump.BlockLengthNumBytes]byte
			lenBuf[0] = byte(len(payload))
			lenBuf[1] = byte(len(payload) >> 8)
			lenBuf[2] = byte(len(payload) >> 16)

			if _, err := w.Write(lenBuf[:]); err != nil {
				return read, written, zjump.NewError(zjump.KindFile, err)
			}
			if _, err := w.Write(payload); err != nil {
				return read, written, zjump.NewError(zjump.KindFile, err)
			}

			read += int64(n)
			written += int64(len(lenBuf)) + int64(len(payload))
			numBlocks++

			c.notify(zjump.NewEvent(zjump.EvtBlockEnd, numBlocks-1, int64(n), int64(len(payload))))
		}

		if rerr == io.EOF || rerr == io.ErrUnexpectedEOF {
			break
		}
		if rerr != nil {
			return read, written, zjump.NewError(zjump.KindFile, rerr)
		}
	}

	if numBlocks > 0 {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return read, written, zjump.NewError(zjump.KindFile, err)
		}
		binary.LittleEndian.PutUint16(countBuf[:], uint16(numBlocks))
		if _, err := w.Write(countBuf[:]); err != nil {
			return read, written, zjump.NewError(zjump.KindFile, err)
		}
		if _, err := seeker.Seek(0, io.SeekEnd); err != nil {
			return read, written, zjump.NewError(zjump.KindFile, err)
		}
	}

	c.notify(zjump.NewEvent(zjump.EvtCompressionEnd, -1, read, written))

	return read, written, nil
}

// Decompressor reverses Compressor: it reads the §6.1 framing and runs
// DecompressBlock over each entry.
type Decompressor struct {
	listeners []zjump.Listener
}

// NewDecompressor creates an empty Decompressor.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// AddListener registers l to receive Event notifications.
func (d *Decompressor) AddListener(l zjump.Listener) bool {
	if l == nil {
		return false
	}
	d.listeners = append(d.listeners, l)
	return true
}

func (d *Decompressor) notify(evt *zjump.Event) {
	for _, l := range d.listeners {
		l.ProcessEvent(evt)
	}
}

// Decompress reads a framed container from r and writes the reconstructed
// bytes to w.
func (d *Decompressor) Decompress(r io.Reader, w io.Writer) (read int64, written int64, err error) {
	d.notify(zjump.NewEvent(zjump.EvtDecompressionStart, -1, 0, 0))

	var countBuf [zjump.NumBlocksFieldSize / 8]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return 0, 0, zjump.NewFormatError(zjump.ReasonStreamTooShort, err)
	}
	read += int64(len(countBuf))

	numBlocks := int(binary.LittleEndian.Uint16(countBuf[:]))
	if numBlocks == 0 {
		return read, 0, zjump.NewFormatError(zjump.ReasonNumBlocks, nil)
	}

	for i := 0; i < numBlocks; i++ {
		var lenBuf [zjump.BlockLengthNumBytes]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return read, written, zjump.NewFormatError(zjump.ReasonStreamTooShort, err)
		}
		read += int64(len(lenBuf))

		payloadLen := int(lenBuf[0]) | int(lenBuf[1])<<8 | int(lenBuf[2])<<16
		if payloadLen <= 0 || payloadLen > zjump.MaxCompressedBlockSize {
			return read, written, zjump.NewFormatError(zjump.ReasonBlockLength, nil)
		}

		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(r, payload); err != nil {
			return read, written, zjump.NewFormatError(zjump.ReasonStreamTooShort, err)
		}
		read += int64(payloadLen)

		d.notify(zjump.NewEvent(zjump.EvtBlockStart, i, int64(payloadLen), 0))

		out, derr := codec.DecompressBlock(payload)
		if derr != nil {
			return read, written, derr
		}

		if _, err := w.Write(out); err != nil {
			return read, written, zjump.NewError(zjump.KindFile, err)
		}
		written += int64(len(out))

		d.notify(zjump.NewEvent(zjump.EvtBlockEnd, i, int64(payloadLen), int64(len(out))))
	}

	trailing := make([]byte, 1)
	if n, _ := r.Read(trailing); n > 0 {
		return read, written, zjump.NewFormatError(zjump.ReasonStreamTooLarge, nil)
	}

	d.notify(zjump.NewEvent(zjump.EvtDecompressionEnd, -1, read, written))

	return read, written, nil
}
