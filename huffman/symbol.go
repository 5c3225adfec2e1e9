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

// reverseBits reverses the low numBits bits of value, so a code assigned in
// the usual MSB-first canonical order can be stored with bitstream.Writer's
// LSB-first packing while still being decodable one bit at a time in MSB
// order (the same trick block_writer.cc's ReverseBits performs).
func reverseBits(value uint16, numBits uint8) uint16 {
	var q uint16
	p := value
	for i := uint8(0); i < numBits; i++ {
		q <<= 1
		q |= p & 1
		p >>= 1
	}
	return q
}

// WriteSymbol appends symbol's canonical Huffman code to bw. symbol must be
// present in e.
func (e *Encoding) WriteSymbol(bw *bitstream.Writer, symbol uint16) error {
	enc := e.Get(symbol)
	if enc == nil {
		return zjump.NewError(zjump.KindHuffman, nil)
	}

	reversed := reverseBits(enc.Value, enc.BitLength)
	if bw.Append(uint64(reversed), enc.BitLength) != enc.BitLength {
		return zjump.NewError(zjump.KindBitWriter, nil)
	}

	return nil
}

// symbolLookupKey packs a (bit_length, code_value) pair the same way
// block_reader.cc's ReadEncodedSymbol does, so decoding can walk the bit
// stream one bit at a time and check for a match after each bit.
func symbolLookupKey(bitLength uint8, value uint16) uint32 {
	return uint32(bitLength) | (uint32(value) << 8)
}

// Decoder decodes a stream of canonical-code symbols previously written
// with Encoding.WriteSymbol, one bit at a time.
type Decoder struct {
	byCode map[uint32]uint16
}

// NewDecoder builds a Decoder from e's present symbols.
func NewDecoder(e *Encoding) *Decoder {
	d := &Decoder{byCode: make(map[uint32]uint16)}
	for s := uint16(0); ; s++ {
		if enc := e.Get(s); enc != nil {
			d.byCode[symbolLookupKey(enc.BitLength, enc.Value)] = enc.Symbol
		}
		if s == e.maxSymbols-1 {
			break
		}
	}
	return d
}

// ReadSymbol reads one symbol from br, consuming between 1 and
// maxBitLength bits. Returns a KindFormat error if the stream ends
// or no valid code is found within the bit-length limit.
func (d *Decoder) ReadSymbol(br *bitstream.Reader, maxBitLength uint8) (uint16, error) {
	var bitLength uint8
	var value uint16

	for bitLength < maxBitLength {
		bit, read := br.ReadNext(1)
		if read != 1 {
			return 0, zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
		}

		value = (value << 1) | uint16(bit)
		bitLength++

		if symbol, ok := d.byCode[symbolLookupKey(bitLength, value)]; ok {
			return symbol, nil
		}
	}

	return 0, zjump.NewFormatError(zjump.ReasonHuffmanEncodedSymbol, nil)
}
