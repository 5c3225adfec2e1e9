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

// Writer serializes a Block to its bit-packed payload, in the field order
// of §4.5: bwt_primary_index, huffman_tree, padding_literals, num_jseqs,
// jseq_literals, jseq_stream.
type Writer struct {
	block *Block
}

// NewWriter creates a Writer for block.
func NewWriter(block *Block) *Writer {
	return &Writer{block: block}
}

// Write serializes w's block into a fresh byte slice.
func (w *Writer) Write() ([]byte, error) {
	bw := bitstream.NewWriter(zjump.MaxCompressedBlockSize)

	if err := w.writeBwtMetadata(bw); err != nil {
		return nil, err
	}
	if err := w.writeHuffmanTree(bw); err != nil {
		return nil, err
	}
	if err := w.writeLiterals(bw); err != nil {
		return nil, err
	}
	if err := w.writeJumpSequences(bw); err != nil {
		return nil, err
	}

	return bw.Get().Bytes, nil
}

func (w *Writer) writeBwtMetadata(bw *bitstream.Writer) error {
	if bw.Append(uint64(w.block.BwtPrimaryIndex), zjump.BlockBwtPrimaryIndexFieldSize) != zjump.BlockBwtPrimaryIndexFieldSize {
		return zjump.NewError(zjump.KindBitWriter, nil)
	}
	return nil
}

func (w *Writer) writeHuffmanTree(bw *bitstream.Writer) error {
	return huffman.NewWriter(w.block.Encoding).Write(bw)
}

func (w *Writer) writeLiterals(bw *bitstream.Writer) error {
	n := len(w.block.PaddingLiterals)
	if bw.Append(uint64(n), zjump.BlockNumLiteralsFieldSize) != zjump.BlockNumLiteralsFieldSize {
		return zjump.NewError(zjump.KindBitWriter, nil)
	}

	for _, lit := range w.block.PaddingLiterals {
		if bw.Append(uint64(lit), 8) != 8 {
			return zjump.NewError(zjump.KindBitWriter, nil)
		}
	}

	return nil
}

func (w *Writer) writeJumpSequences(bw *bitstream.Writer) error {
	if bw.Append(uint64(w.block.NumJseqs), zjump.BlockNumJumpSequencesFieldSize) != zjump.BlockNumJumpSequencesFieldSize {
		return zjump.NewError(zjump.KindBitWriter, nil)
	}

	for _, lit := range w.block.JseqLiterals {
		if bw.Append(uint64(lit), 8) != 8 {
			return zjump.NewError(zjump.KindBitWriter, nil)
		}
	}

	for _, symbol := range w.block.JseqStream {
		if err := w.block.Encoding.WriteSymbol(bw, symbol); err != nil {
			return err
		}
	}

	return nil
}
