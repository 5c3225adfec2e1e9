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

package block

import (
	"github.com/vteromero/zjump"
	"github.com/vteromero/zjump/bitstream"
	"github.com/vteromero/zjump/huffman"
)

// Reader deserializes a Block from the bit-packed payload a Writer produced,
// mirroring the field order: bwt_primary_index, huffman_tree,
// padding_literals, num_jseqs, jseq_literals, jseq_stream.
type Reader struct {
	br *bitstream.Reader
}

// NewReader wraps data (one block's payload bytes) for reading.
func NewReader(data []byte) *Reader {
	return &Reader{br: bitstream.NewReader(data)}
}

// Read deserializes and returns a Block.
func (r *Reader) Read() (*Block, error) {
	b := &Block{}

	if err := r.readBwtMetadata(b); err != nil {
		return nil, err
	}
	if err := r.readHuffmanTree(b); err != nil {
		return nil, err
	}
	if err := r.readLiterals(b); err != nil {
		return nil, err
	}
	if err := r.readJumpSequences(b); err != nil {
		return nil, err
	}

	return b, nil
}

func (r *Reader) readBwtMetadata(b *Block) error {
	v, read := r.br.ReadNext(zjump.BlockBwtPrimaryIndexFieldSize)
	if read != zjump.BlockBwtPrimaryIndexFieldSize {
		return zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
	}
	b.BwtPrimaryIndex = int(v)
	return nil
}

func (r *Reader) readHuffmanTree(b *Block) error {
	enc, err := huffman.NewReader(zjump.MaxSymbols, zjump.MaxBitLength).Read(r.br)
	if err != nil {
		return err
	}
	b.Encoding = enc
	return nil
}

func (r *Reader) readLiterals(b *Block) error {
	n, read := r.br.ReadNext(zjump.BlockNumLiteralsFieldSize)
	if read != zjump.BlockNumLiteralsFieldSize {
		return zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
	}
	if n > zjump.MaxExpandedBlockSize {
		return zjump.NewFormatError(zjump.ReasonLiteralsLength, nil)
	}

	b.PaddingLiterals = make([]byte, n)
	for i := range b.PaddingLiterals {
		v, read := r.br.ReadNext(8)
		if read != 8 {
			return zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
		}
		b.PaddingLiterals[i] = byte(v)
	}

	return nil
}

func (r *Reader) readJumpSequences(b *Block) error {
	n, read := r.br.ReadNext(zjump.BlockNumJumpSequencesFieldSize)
	if read != zjump.BlockNumJumpSequencesFieldSize {
		return zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
	}
	b.NumJseqs = int(n)

	b.JseqLiterals = make([]byte, b.NumJseqs)
	for i := range b.JseqLiterals {
		v, read := r.br.ReadNext(8)
		if read != 8 {
			return zjump.NewFormatError(zjump.ReasonStreamTooShort, nil)
		}
		b.JseqLiterals[i] = byte(v)
	}

	decoder := huffman.NewDecoder(b.Encoding)
	eosSeen := 0

	for eosSeen < b.NumJseqs {
		symbol, err := decoder.ReadSymbol(r.br, b.Encoding.MaxBitLength())
		if err != nil {
			return err
		}

		b.JseqStream = append(b.JseqStream, symbol)

		if symbol == zjump.EndOfSequenceSymbol {
			eosSeen++
		}
	}

	return nil
}
