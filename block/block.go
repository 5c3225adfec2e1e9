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

// Package block implements the per-block container format (§4.5): a
// Block holds everything CompressBlock/DecompressBlock (in package codec)
// produce or need, and Writer/Reader (de)serialize it to/from the
// bit-packed payload bytes that make up one entry of the multi-block
// stream (§6.1).
package block

import "github.com/vteromero/zjump/huffman"

// Block is the Go-native equivalent of the original's fixed-capacity
// ZjumpBlock: every field here is a slice sized to what the block actually
// holds, not a pre-allocated scratch buffer.
type Block struct {
	BwtPrimaryIndex int
	Encoding        *huffman.Encoding
	JseqLiterals    []byte
	PaddingLiterals []byte
	JseqStream      []uint16 // RLE-1-coded symbols, ready for Huffman coding
	NumJseqs        int
}
