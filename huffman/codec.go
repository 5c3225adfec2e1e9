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
	"github.com/vteromero/zjump"
	"github.com/vteromero/zjump/bitstream"
)

// rangeSizes are the three range-based presence-flag layouts (types 1-3);
// type 0 (one bit per symbol, no ranges) is handled separately.
var rangeSizes = [3]int{8, 16, 32}

// bitLengthFieldWidth returns the fixed-width field, in bits, needed to
// encode a bit length in [0, maxBitLength]. ⌈log2(maxBitLength+1)⌉ per
// spec §4.3.2.
func bitLengthFieldWidth(maxBitLength uint8) uint8 {
	n := uint8(0)
	for (uint32(1) << n) <= uint32(maxBitLength) {
		n++
	}
	return n
}

// presenceBits reports, for every symbol, whether it is present in enc.
func presenceBits(enc *Encoding) []bool {
	present := make([]bool, enc.maxSymbols)
	for s := range present {
		present[s] = enc.symbols[s].BitLength != 0
	}
	return present
}

// flagBitsType0 is the bit cost of the full one-bit-per-symbol layout.
func flagBitsType0(present []bool) int {
	return len(present)
}

// flagBitsRanged is the bit cost of the range-based layout with the given
// range size: one flag bit per range, plus rangeSize bits for every range
// containing at least one present symbol.
func flagBitsRanged(present []bool, rangeSize int) int {
	numRanges := (len(present) + rangeSize - 1) / rangeSize
	bits := numRanges

	for r := 0; r < numRanges; r++ {
		start := r * rangeSize
		end := start + rangeSize
		if end > len(present) {
			end = len(present)
		}
		for s := start; s < end; s++ {
			if present[s] {
				bits += rangeSize
				break
			}
		}
	}

	return bits
}

// Writer serializes an Encoding's tree (bit lengths only; code values are
// reconstructed canonically by the reader) per spec §4.3.2.
type Writer struct {
	enc *Encoding
}

// NewWriter creates a Writer for enc.
func NewWriter(enc *Encoding) *Writer {
	return &Writer{enc: enc}
}

func (w *Writer) chooseEncodingType() (encType uint8, present []bool) {
	present = presenceBits(w.enc)
	bestType := uint8(0)
	bestBits := flagBitsType0(present)

	for i, rs := range rangeSizes {
		if bits := flagBitsRanged(present, rs); bits < bestBits {
			bestBits = bits
			bestType = uint8(i + 1)
		}
	}

	return bestType, present
}

// Write serializes the tree to bw: 2-bit type, presence flags, then one
// fixed-width bit-length field per present symbol in ascending symbol
// order.
func (w *Writer) Write(bw *bitstream.Writer) error {
	encType, present := w.chooseEncodingType()

	if bw.Append(uint64(encType), 2) != 2 {
		return zjump.NewError(zjump.KindBitWriter, nil)
	}

	if encType == 0 {
		for _, p := range present {
			bit := uint64(0)
			if p {
				bit = 1
			}
			if bw.Append(bit, 1) != 1 {
				return zjump.NewError(zjump.KindBitWriter, nil)
			}
		}
	} else {
		rangeSize := rangeSizes[encType-1]
		numRanges := (len(present) + rangeSize - 1) / rangeSize
		rangeHasSymbol := make([]bool, numRanges)

		for r := 0; r < numRanges; r++ {
			start := r * rangeSize
			end := start + rangeSize
			if end > len(present) {
				end = len(present)
			}
			for s := start; s < end; s++ {
				if present[s] {
					rangeHasSymbol[r] = true
					break
				}
			}

			bit := uint64(0)
			if rangeHasSymbol[r] {
				bit = 1
			}
			if bw.Append(bit, 1) != 1 {
				return zjump.NewError(zjump.KindBitWriter, nil)
			}
		}

		for r := 0; r < numRanges; r++ {
			if !rangeHasSymbol[r] {
				continue
			}
			start := r * rangeSize
			for s := start; s < start+rangeSize; s++ {
				p := s < len(present) && present[s]
				bit := uint64(0)
				if p {
					bit = 1
				}
				if bw.Append(bit, 1) != 1 {
					return zjump.NewError(zjump.KindBitWriter, nil)
				}
			}
		}
	}

	fieldWidth := bitLengthFieldWidth(w.enc.maxBitLength)

	for s, p := range present {
		if !p {
			continue
		}
		bl := w.enc.symbols[s].BitLength
		if bw.Append(uint64(bl), fieldWidth) != fieldWidth {
			return zjump.NewError(zjump.KindBitWriter, nil)
		}
	}

	return nil
}

// Reader deserializes a tree written by Writer into a BitLengthBuilder,
// then an Encoding, per spec §4.3.3.
type Reader struct {
	maxSymbols   uint16
	maxBitLength uint8
}

// NewReader creates a Reader for the given alphabet parameters.
func NewReader(maxSymbols uint16, maxBitLength uint8) *Reader {
	return &Reader{maxSymbols: maxSymbols, maxBitLength: maxBitLength}
}

// Read reads a tree from br and returns the resulting Encoding.
func (r *Reader) Read(br *bitstream.Reader) (*Encoding, error) {
	encType, read := br.ReadNext(2)
	if read != 2 {
		return nil, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
	}

	present := make([]bool, r.maxSymbols)

	if encType == 0 {
		for s := range present {
			bit, read := br.ReadNext(1)
			if read != 1 {
				return nil, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
			}
			present[s] = bit == 1
		}
	} else {
		rangeSize := rangeSizes[encType-1]
		numRanges := (len(present) + rangeSize - 1) / rangeSize
		rangeHasSymbol := make([]bool, numRanges)

		for rr := 0; rr < numRanges; rr++ {
			bit, read := br.ReadNext(1)
			if read != 1 {
				return nil, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
			}
			rangeHasSymbol[rr] = bit == 1
		}

		for rr := 0; rr < numRanges; rr++ {
			if !rangeHasSymbol[rr] {
				continue
			}
			start := rr * rangeSize
			for s := start; s < start+rangeSize; s++ {
				bit, read := br.ReadNext(1)
				if read != 1 {
					return nil, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
				}
				if s < len(present) {
					present[s] = bit == 1
				}
			}
		}
	}

	fieldWidth := bitLengthFieldWidth(r.maxBitLength)
	builder := NewBitLengthBuilder(r.maxSymbols, r.maxBitLength)

	for s, p := range present {
		if !p {
			continue
		}
		bl, read := br.ReadNext(fieldWidth)
		if read != fieldWidth {
			return nil, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
		}
		if bl == 0 || uint8(bl) > r.maxBitLength {
			return nil, zjump.NewFormatError(zjump.ReasonHuffmanBitLength, nil)
		}
		builder.SetSymbolBitLength(uint16(s), uint8(bl))
	}

	return builder.Build(), nil
}
