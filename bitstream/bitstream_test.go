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

package bitstream

import (
	"bytes"
	"testing"
)

func TestWrite56BitsAtZero(t *testing.T) {
	w := NewWriter(16)
	written := w.Write(0x11223344556677, 56, 0)

	if written != 56 {
		t.Fatalf("expected 56 bits written, got %d", written)
	}

	snap := w.Get()
	want := []byte{0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, 0x00}

	if !bytes.Equal(snap.Bytes[:len(want)], want) {
		t.Fatalf("got % x, want % x", snap.Bytes[:len(want)], want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for n := uint8(1); n <= 56; n++ {
		w := NewWriter(16)
		value := (uint64(1) << n) - 1 // all-ones pattern of width n
		if n == 64 {
			value = ^uint64(0)
		}

		w.Append(value, n)
		snap := w.Get()

		r := NewReader(append([]byte{}, snap.Bytes...))
		got, read := r.Read(n, 0)

		if read != n {
			t.Fatalf("n=%d: expected %d bits read, got %d", n, n, read)
		}
		if got != value {
			t.Fatalf("n=%d: expected %#x, got %#x", n, value, got)
		}
	}
}

func TestAppendAdvancesPosition(t *testing.T) {
	w := NewWriter(16)
	w.Append(0x3, 2)
	w.Append(0x5, 3)

	if w.SizeInBits() != 5 {
		t.Fatalf("expected size 5, got %d", w.SizeInBits())
	}

	r := NewReader(w.Get().Bytes)
	v1, _ := r.ReadNext(2)
	v2, _ := r.ReadNext(3)

	if v1 != 0x3 || v2 != 0x5 {
		t.Fatalf("got v1=%d v2=%d, want 3 5", v1, v2)
	}
}

func TestReadTruncatesAtEndOfStream(t *testing.T) {
	w := NewWriter(16)
	w.Append(0x1, 4)

	// The reader only sees the 1-byte snapshot, so its stream ends at bit 8.
	r := NewReader(w.Get().Bytes)
	_, read := r.Read(56, 0)

	if read != 8 {
		t.Fatalf("expected truncated read of 8 bits, got %d", read)
	}
}

func TestMoveToAndNextPos(t *testing.T) {
	r := NewReader([]byte{0xff, 0xff})
	r.MoveTo(3)

	if r.NextPos() != 3 {
		t.Fatalf("expected NextPos 3, got %d", r.NextPos())
	}

	r.Reset()

	if r.NextPos() != 0 {
		t.Fatalf("expected NextPos 0 after Reset, got %d", r.NextPos())
	}
}
