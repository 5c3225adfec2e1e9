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

package bwt

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/vteromero/zjump"
)

func roundTrip(t *testing.T, in []byte) {
	t.Helper()

	buf := append([]byte(nil), in...)

	primaryIndex, err := ForwardBWT(buf)
	if err != nil {
		t.Fatalf("ForwardBWT: %v", err)
	}

	if err := InverseBWT(buf, primaryIndex); err != nil {
		t.Fatalf("InverseBWT: %v", err)
	}

	if !bytes.Equal(buf, in) {
		t.Fatalf("round-trip mismatch:\n got  %q\n want %q", buf, in)
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("A"),
		[]byte("AA"),
		[]byte("banana"),
		[]byte("mississippi"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("ab"), 5000),
		bytes.Repeat([]byte{0}, 1000),
	}

	for _, c := range cases {
		roundTrip(t, c)
	}
}

// TestForwardInverseRoundTripRandom exercises every byte value and a range
// of block sizes with a seeded source, so failures reproduce deterministically.
func TestForwardInverseRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		size := 1 + rnd.Intn(4096)
		buf := make([]byte, size)
		rnd.Read(buf)
		roundTrip(t, buf)
	}
}

func TestForwardRejectsOversizedBlock(t *testing.T) {
	buf := make([]byte, zjump.MaxExpandedBlockSize+1)

	if _, err := ForwardBWT(buf); err == nil {
		t.Fatal("expected an error for a block larger than MaxExpandedBlockSize")
	}
}

func TestInverseRejectsOutOfRangePrimaryIndex(t *testing.T) {
	buf := []byte("banana")

	if err := InverseBWT(buf, len(buf)); err == nil {
		t.Fatal("expected an error for an out-of-range primary index")
	}

	var kind zjump.ErrorKind
	err := InverseBWT(buf, len(buf))
	if !zjump.As(err, &kind) || kind != zjump.KindFormat {
		t.Fatalf("got %v, want KindFormat", err)
	}
}
