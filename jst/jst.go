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

// Package jst implements the Jump-Sequence Transform (§4.4): a dictionary-
// like stage that, pass by pass, picks a byte value, records the distances
// between its successive occurrences as a jump-length sub-sequence, and
// removes those occurrences from the working stream ("shrink"). Unlike the
// simpler byte-frequency-ordered search this is adapted from, pass
// selection here is cost-driven: every candidate byte's jump sub-sequence
// is costed against a static reference bit-length table before being
// chosen, and a pass is only taken if it yields a net bit reduction.
package jst

import "github.com/vteromero/zjump"

// staticBitLengths estimates the Huffman code length of every jump-stream
// symbol for the purposes of pass-selection cost accounting, since the
// real canonical code is only known after the transform completes and the
// full symbol frequencies are tallied.
var staticBitLengths = [256]uint8{
	5, 1, 2, 3, 3, 3, 4, 4, 4, 5, 5, 5, 5, 5, 5, 5,
	6, 6, 6, 6, 6, 6, 6, 7, 7, 7, 7, 7, 7, 7, 7, 7,
	7, 7, 7, 7, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9,
	9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10,
	10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13,
}

// literalOverheadBits is the per-pass cost of the chosen byte's literal
// entry plus its jump sub-sequence's END-OF-SEQUENCE terminator.
func literalOverheadBits() int {
	return 8 + int(staticBitLengths[zjump.EndOfSequenceSymbol])
}

// Result holds the three streams produced by Forward, ready to be RLE-1-
// and Huffman-coded for the block container (§4.5).
type Result struct {
	JseqStream      []uint16
	JseqLiterals    []byte
	PaddingLiterals []byte
	NumJseqs        int
}

// encodeJump converts a raw jump distance v (v==1 meaning the occurrence
// immediately follows the previous one, per §4.4.4's "v-1 bytes retained"
// rule) into one or more jseq_stream symbols: a chain of SKIP-CHUNK
// escapes for any distance beyond MaxJumpSize, followed by the symbol for
// the remainder (§4.4.3).
func encodeJump(v uint32) []uint16 {
	maxJump := uint32(zjump.MaxJumpSize)

	if v <= maxJump {
		return []uint16{zjump.MinJumpSymbol + uint16(v) - zjump.MinJumpSize}
	}

	numChunks := (v + maxJump - 1) / maxJump
	skipCount := numChunks - 1
	remainder := v % maxJump
	if remainder == 0 {
		remainder = maxJump
	}

	out := make([]uint16, 0, skipCount+1)
	for i := uint32(0); i < skipCount; i++ {
		out = append(out, zjump.SkipChunkSymbol)
	}
	out = append(out, zjump.MinJumpSymbol+uint16(remainder)-zjump.MinJumpSize)

	return out
}

// jumpCost is the static-table bit cost of encodeJump(v).
func jumpCost(v uint32) int {
	cost := 0
	for _, s := range encodeJump(v) {
		cost += int(staticBitLengths[s])
	}
	return cost
}

// candidatePass scans work for byte b and returns the raw jump distances
// of its occurrences (for shrinking), the jseq_stream symbols that encode
// them, and the total bit cost of emitting this pass (symbols plus the
// per-pass literal/EOS overhead).
func candidatePass(b byte, work []byte) (jumps []uint32, symbols []uint16, bits int) {
	bits = literalOverheadBits()

	jump := uint32(1)
	for i := 0; i < len(work); i++ {
		if work[i] == b {
			jumps = append(jumps, jump)
			syms := encodeJump(jump)
			symbols = append(symbols, syms...)
			for _, s := range syms {
				bits += int(staticBitLengths[s])
			}
			jump = 0
		}
		jump++
	}

	return jumps, symbols, bits
}

// shrinkStream removes the occurrences recorded in jumps (in occurrence
// order) from work, retaining everything else, per §4.4.4.
func shrinkStream(work []byte, jumps []uint32) []byte {
	out := make([]byte, 0, len(work))
	jump := uint32(1)
	j := 0

	for i := 0; i < len(work); i++ {
		if j < len(jumps) && jump == jumps[j] {
			jump = 0
			j++
		} else {
			out = append(out, work[i])
		}
		jump++
	}

	return out
}

// countBytes tallies occurrences of every byte value in work.
func countBytes(work []byte) [256]uint32 {
	var counts [256]uint32
	for _, b := range work {
		counts[b]++
	}
	return counts
}

// Forward runs passes over stream until no candidate byte yields a
// positive bit reduction, per §4.4.1/§4.4.2.
func Forward(stream []byte) (*Result, error) {
	res := &Result{}
	work := append([]byte(nil), stream...)

	for len(work) > 0 {
		counts := countBytes(work)

		bestByte := -1
		bestReduction := 0
		var bestJumps []uint32
		var bestSymbols []uint16

		for b := 0; b < 256; b++ {
			if counts[b] == 0 {
				continue
			}

			jumps, symbols, bits := candidatePass(byte(b), work)
			reduction := 8*len(jumps) - bits

			if reduction > bestReduction {
				bestReduction = reduction
				bestByte = b
				bestJumps = jumps
				bestSymbols = symbols
			}
		}

		if bestByte < 0 {
			break
		}

		work = shrinkStream(work, bestJumps)

		if len(res.JseqStream) > 0 {
			res.JseqStream = append(res.JseqStream, zjump.ShrinkStreamSymbol)
		}
		res.JseqStream = append(res.JseqStream, bestSymbols...)
		res.JseqStream = append(res.JseqStream, zjump.EndOfSequenceSymbol)
		res.JseqLiterals = append(res.JseqLiterals, byte(bestByte))
		res.NumJseqs++

		if res.NumJseqs == zjump.MaxNumJSequences {
			break
		}
	}

	res.PaddingLiterals = work

	return res, nil
}

// enlargeStream reverses one pass of shrinkStream: every symbol in
// symbols re-inserts literal after the bytes it implies were retained
// (accumulating any preceding SKIP-CHUNK escapes into the jump distance),
// then the remaining tail of in is copied verbatim.
func enlargeStream(literal byte, symbols []uint16, in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in)+len(symbols))
	m := 0
	var skipBytes uint32

	for _, s := range symbols {
		if s == zjump.SkipChunkSymbol {
			skipBytes += uint32(zjump.MaxJumpSize)
			continue
		}

		v := uint32(s) - uint32(zjump.MinJumpSymbol) + uint32(zjump.MinJumpSize) + skipBytes
		skipBytes = 0

		sz := int(v) - 1
		if sz < 0 || m+sz > len(in) {
			return nil, zjump.NewError(zjump.KindReconstructingStream, nil)
		}

		out = append(out, in[m:m+sz]...)
		m += sz
		out = append(out, literal)
	}

	if m > len(in) {
		return nil, zjump.NewError(zjump.KindReconstructingStream, nil)
	}
	out = append(out, in[m:]...)

	return out, nil
}

// Inverse reconstructs the pre-JST stream from a Result's three streams,
// per §4.4.5. jseqStream must already be RLE-1-decoded.
func Inverse(jseqStream []uint16, jseqLiterals []byte, paddingLiterals []byte, numJseqs int) ([]byte, error) {
	passes := make([][]uint16, 0, numJseqs)
	var current []uint16

	for _, s := range jseqStream {
		switch s {
		case zjump.EndOfSequenceSymbol:
			passes = append(passes, current)
			current = nil
		case zjump.ShrinkStreamSymbol:
			// Pass-boundary marker; EOS already delimits passes
			// unambiguously, so this is skipped rather than consumed
			// as meaningful content.
		default:
			current = append(current, s)
		}
	}

	if len(passes) != numJseqs {
		return nil, zjump.NewFormatError(zjump.ReasonNumJSeqs, nil)
	}
	if len(jseqLiterals) != numJseqs {
		return nil, zjump.NewFormatError(zjump.ReasonLiteralsLength, nil)
	}

	in := append([]byte(nil), paddingLiterals...)

	for j := numJseqs - 1; j >= 0; j-- {
		out, err := enlargeStream(jseqLiterals[j], passes[j], in)
		if err != nil {
			return nil, err
		}
		in = out
	}

	return in, nil
}
