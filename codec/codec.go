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

// Package codec orchestrates one block's full compress/decompress
// pipeline (§4.6): BWT, then the Jump-Sequence Transform, then RLE-1,
// then a length-limited canonical Huffman code, packed into a block
// package Block and serialized by block.Writer/Reader. Decompression
// runs every stage in reverse, in the opposite order.
package codec

import (
	"github.com/vteromero/zjump"
	"github.com/vteromero/zjump/block"
	"github.com/vteromero/zjump/bwt"
	"github.com/vteromero/zjump/huffman"
	"github.com/vteromero/zjump/jst"
	"github.com/vteromero/zjump/rle"
)

// CompressBlock runs the full forward pipeline over data (one block's
// worth of input bytes) and returns its serialized, bit-packed payload.
func CompressBlock(data []byte) ([]byte, error) {
	buf := append([]byte(nil), data...)

	primaryIndex, err := bwt.ForwardBWT(buf)
	if err != nil {
		return nil, err
	}

	jseqResult, err := jst.Forward(buf)
	if err != nil {
		return nil, err
	}

	coded := rle.Encode(jseqResult.JseqStream)

	freqs := huffman.NewFrequencyBuilder(zjump.MaxSymbols, zjump.MaxBitLength)
	for _, s := range coded {
		freqs.AddSymbolFrequency(s, 1)
	}

	encoding, err := freqs.Build()
	if err != nil {
		return nil, err
	}

	b := &block.Block{
		BwtPrimaryIndex: primaryIndex,
		Encoding:        encoding,
		JseqStream:      coded,
		JseqLiterals:    jseqResult.JseqLiterals,
		PaddingLiterals: jseqResult.PaddingLiterals,
		NumJseqs:        jseqResult.NumJseqs,
	}

	return block.NewWriter(b).Write()
}

// DecompressBlock reverses CompressBlock: it deserializes payload into a
// Block and runs the inverse Huffman/RLE-1/JST/BWT pipeline, returning the
// original block bytes.
func DecompressBlock(payload []byte) ([]byte, error) {
	b, err := block.NewReader(payload).Read()
	if err != nil {
		return nil, err
	}

	decoded := rle.Decode(b.JseqStream)

	buf, err := jst.Inverse(decoded, b.JseqLiterals, b.PaddingLiterals, b.NumJseqs)
	if err != nil {
		return nil, err
	}

	if err := bwt.InverseBWT(buf, b.BwtPrimaryIndex); err != nil {
		return nil, err
	}

	return buf, nil
}
