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

package huffman

import (
	"testing"

	"github.com/vteromero/zjump/bitstream"
)

// TestCanonicalCodesScenario6 reproduces spec §8 scenario 6: frequencies
// {1:5, 2:7, 3:10, 4:15, 5:20, 6:45} under L_MAX=16 should canonicalize to
// (symbol, length, value) = (1,4,14) (2,4,15) (3,3,4) (4,3,5) (5,3,6) (6,1,0).
func TestCanonicalCodesScenario6(t *testing.T) {
	b := NewFrequencyBuilder(7, 16)
	b.SetSymbolFrequency(1, 5)
	b.SetSymbolFrequency(2, 7)
	b.SetSymbolFrequency(3, 10)
	b.SetSymbolFrequency(4, 15)
	b.SetSymbolFrequency(5, 20)
	b.SetSymbolFrequency(6, 45)

	enc, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := map[uint16]EncodedSymbol{
		1: {Symbol: 1, BitLength: 4, Value: 14},
		2: {Symbol: 2, BitLength: 4, Value: 15},
		3: {Symbol: 3, BitLength: 3, Value: 4},
		4: {Symbol: 4, BitLength: 3, Value: 5},
		5: {Symbol: 5, BitLength: 3, Value: 6},
		6: {Symbol: 6, BitLength: 1, Value: 0},
	}

	for sym, w := range want {
		got := enc.Get(sym)
		if got == nil {
			t.Fatalf("symbol %d absent from encoding", sym)
		}
		if got.BitLength != w.BitLength || got.Value != w.Value {
			t.Errorf("symbol %d: got (len=%d, val=%d), want (len=%d, val=%d)",
				sym, got.BitLength, got.Value, w.BitLength, w.Value)
		}
	}
}

func TestFrequencyBuilderEmpty(t *testing.T) {
	b := NewFrequencyBuilder(8, 15)
	enc, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for s := uint16(0); s < 8; s++ {
		if enc.Get(s) != nil {
			t.Fatalf("symbol %d unexpectedly present in empty encoding", s)
		}
	}
}

func TestFrequencyBuilderSingleSymbol(t *testing.T) {
	b := NewFrequencyBuilder(4, 15)
	b.SetSymbolFrequency(2, 100)

	enc, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := enc.Get(2)
	if got == nil || got.BitLength != 1 || got.Value != 0 {
		t.Fatalf("got %+v, want BitLength=1 Value=0", got)
	}
}

// TestWriterReaderRoundTrip exercises every presence-flag encoding type by
// shaping frequency distributions that favor each: dense alphabets favor
// type 0, sparse clustered alphabets favor the ranged types.
func TestWriterReaderRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		build func() *Encoding
	}{
		{
			name: "dense",
			build: func() *Encoding {
				b := NewFrequencyBuilder(256, 15)
				for s := uint16(0); s < 256; s++ {
					b.SetSymbolFrequency(s, uint32(s)+1)
				}
				enc, err := b.Build()
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				return enc
			},
		},
		{
			name: "sparse",
			build: func() *Encoding {
				b := NewFrequencyBuilder(256, 15)
				b.SetSymbolFrequency(3, 10)
				b.SetSymbolFrequency(5, 20)
				b.SetSymbolFrequency(200, 30)
				enc, err := b.Build()
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				return enc
			},
		},
		{
			name: "clustered",
			build: func() *Encoding {
				b := NewFrequencyBuilder(256, 15)
				b.SetSymbolFrequency(0, 1)
				b.SetSymbolFrequency(8, 2)
				b.SetSymbolFrequency(16, 3)
				b.SetSymbolFrequency(24, 4)
				enc, err := b.Build()
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				return enc
			},
		},
		{
			name: "single",
			build: func() *Encoding {
				b := NewFrequencyBuilder(256, 15)
				b.SetSymbolFrequency(42, 1)
				enc, err := b.Build()
				if err != nil {
					t.Fatalf("Build: %v", err)
				}
				return enc
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc := c.build()

			bw := bitstream.NewWriter(256)
			if err := NewWriter(enc).Write(bw); err != nil {
				t.Fatalf("Write: %v", err)
			}

			snap := bw.Get()
			br := bitstream.NewReader(snap.Bytes)

			got, err := NewReader(256, 15).Read(br)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}

			for s := uint16(0); s < 256; s++ {
				want := enc.Get(s)
				have := got.Get(s)
				if (want == nil) != (have == nil) {
					t.Fatalf("symbol %d: presence mismatch (want=%v have=%v)", s, want, have)
				}
				if want != nil && (want.BitLength != have.BitLength || want.Value != have.Value) {
					t.Fatalf("symbol %d: got %+v, want %+v", s, have, want)
				}
			}
		})
	}
}

func TestWriteReadSymbolRoundTrip(t *testing.T) {
	b := NewFrequencyBuilder(7, 16)
	b.SetSymbolFrequency(1, 5)
	b.SetSymbolFrequency(2, 7)
	b.SetSymbolFrequency(3, 10)
	b.SetSymbolFrequency(4, 15)
	b.SetSymbolFrequency(5, 20)
	b.SetSymbolFrequency(6, 45)

	enc, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	stream := []uint16{6, 6, 6, 3, 4, 5, 1, 2, 6, 6, 6, 6, 6}

	bw := bitstream.NewWriter(64)
	for _, s := range stream {
		if err := enc.WriteSymbol(bw, s); err != nil {
			t.Fatalf("WriteSymbol(%d): %v", s, err)
		}
	}

	snap := bw.Get()
	br := bitstream.NewReader(snap.Bytes)
	br.MoveTo(0)

	dec := NewDecoder(enc)
	for i, want := range stream {
		got, err := dec.ReadSymbol(br, 16)
		if err != nil {
			t.Fatalf("ReadSymbol at %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("symbol %d: got %d, want %d", i, got, want)
		}
	}
}

func TestBitLengthFieldWidth(t *testing.T) {
	if got := bitLengthFieldWidth(15); got != 4 {
		t.Fatalf("bitLengthFieldWidth(15) = %d, want 4", got)
	}
	if got := bitLengthFieldWidth(16); got != 5 {
		t.Fatalf("bitLengthFieldWidth(16) = %d, want 5", got)
	}
}
