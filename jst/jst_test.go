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

package jst

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/vteromero/zjump"
)

func roundTrip(t *testing.T, in []byte) []byte {
	t.Helper()

	res, err := Forward(in)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	out, err := Inverse(res.JseqStream, res.JseqLiterals, res.PaddingLiterals, res.NumJseqs)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	return out
}

func TestForwardInverseRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("A"),
		[]byte("AAAAAAAA"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("ab"), 5000),
		[]byte("mississippi river runs through mississippi"),
	}

	for _, c := range cases {
		got := roundTrip(t, c)
		want := c
		if want == nil {
			want = []byte{}
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("round-trip mismatch for %q:\n got  %q\n want %q", c, got, want)
		}
	}
}

// TestSingleByteShrinksToPaddingLiteral reproduces spec §8's single-byte
// boundary case: one byte can never yield a positive reduction (the fixed
// per-pass overhead always exceeds the 8 bits it could save), so JST must
// leave it untouched as a padding literal.
func TestSingleByteShrinksToPaddingLiteral(t *testing.T) {
	res, err := Forward([]byte("A"))
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if res.NumJseqs != 0 {
		t.Fatalf("NumJseqs = %d, want 0", res.NumJseqs)
	}
	if len(res.JseqStream) != 0 {
		t.Fatalf("JseqStream = %v, want empty", res.JseqStream)
	}
	if !bytes.Equal(res.PaddingLiterals, []byte("A")) {
		t.Fatalf("PaddingLiterals = %v, want %v", res.PaddingLiterals, []byte("A"))
	}
}

// TestAllIdenticalBytesSinglePass reproduces spec §8's "all identical
// bytes" boundary: one jump sequence, all jumps valued 1 (the RLE-1
// friendly case), no padding literals left over.
func TestAllIdenticalBytesSinglePass(t *testing.T) {
	in := bytes.Repeat([]byte("A"), 40)

	res, err := Forward(in)
	if err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if res.NumJseqs != 1 {
		t.Fatalf("NumJseqs = %d, want 1", res.NumJseqs)
	}
	if !bytes.Equal(res.JseqLiterals, []byte{'A'}) {
		t.Fatalf("JseqLiterals = %v, want [A]", res.JseqLiterals)
	}
	if len(res.PaddingLiterals) != 0 {
		t.Fatalf("PaddingLiterals = %v, want empty", res.PaddingLiterals)
	}

	want := make([]uint16, 0, 41)
	for i := 0; i < 40; i++ {
		want = append(want, 1)
	}
	want = append(want, zjump.EndOfSequenceSymbol)

	if !reflect.DeepEqual(res.JseqStream, want) {
		t.Fatalf("JseqStream = %v, want %v", res.JseqStream, want)
	}
}

func TestEncodeJumpWithinRange(t *testing.T) {
	got := encodeJump(1)
	want := []uint16{1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encodeJump(1) = %v, want %v", got, want)
	}

	got = encodeJump(uint32(zjump.MaxJumpSize))
	want = []uint16{zjump.MaxJumpSymbol}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("encodeJump(MaxJumpSize) = %v, want %v", got, want)
	}
}

// TestEncodeJumpSkipChunk exercises the SKIP-CHUNK escape path for jump
// distances beyond MaxJumpSize, and its exact inverse in enlargeStream.
func TestEncodeJumpSkipChunk(t *testing.T) {
	maxJump := uint32(zjump.MaxJumpSize)

	cases := []struct {
		v            uint32
		wantSkips    int
		wantRemSym   uint16
	}{
		{v: maxJump + 1, wantSkips: 1, wantRemSym: 1},
		{v: 2 * maxJump, wantSkips: 1, wantRemSym: zjump.MaxJumpSymbol},
		{v: 2*maxJump + 10, wantSkips: 2, wantRemSym: zjump.MinJumpSymbol + 8},
	}

	for _, c := range cases {
		syms := encodeJump(c.v)

		if len(syms) != c.wantSkips+1 {
			t.Fatalf("encodeJump(%d) = %v, want %d skip symbols + 1 remainder", c.v, syms, c.wantSkips)
		}
		for i := 0; i < c.wantSkips; i++ {
			if syms[i] != zjump.SkipChunkSymbol {
				t.Fatalf("encodeJump(%d)[%d] = %d, want SKIP-CHUNK", c.v, i, syms[i])
			}
		}
		if got := syms[len(syms)-1]; got != c.wantRemSym {
			t.Fatalf("encodeJump(%d) remainder symbol = %d, want %d", c.v, got, c.wantRemSym)
		}

		out, err := enlargeStream('x', syms, make([]byte, c.v-1))
		if err != nil {
			t.Fatalf("enlargeStream: %v", err)
		}
		if len(out) != int(c.v) {
			t.Fatalf("enlargeStream reconstructed length = %d, want %d", len(out), c.v)
		}
		if out[len(out)-1] != 'x' {
			t.Fatalf("enlargeStream last byte = %q, want 'x'", out[len(out)-1])
		}
	}
}

func TestInverseRejectsOverrun(t *testing.T) {
	_, err := Inverse([]uint16{zjump.MinJumpSymbol + 50, zjump.EndOfSequenceSymbol}, []byte{'x'}, nil, 1)
	if err == nil {
		t.Fatal("expected an error for a jump that overruns the input")
	}

	var kind zjump.ErrorKind
	if !zjump.As(err, &kind) || kind != zjump.KindReconstructingStream {
		t.Fatalf("got %v, want KindReconstructingStream", err)
	}
}

func TestInverseRejectsJseqCountMismatch(t *testing.T) {
	_, err := Inverse([]uint16{zjump.EndOfSequenceSymbol}, []byte{'x'}, nil, 2)
	if err == nil {
		t.Fatal("expected an error for a jseq count mismatch")
	}
}
