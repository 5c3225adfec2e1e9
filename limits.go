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

package zjump

// Version is the zjump format/tool version, encoded as MAJOR*10000 +
// MINOR*100 + PATCH.
const Version = 201

// Block size limits (§6.4).
const (
	MaxExpandedBlockSize   = 200000
	MaxCompressedBlockSize = 250000
	MaxNumJSequences       = 65535
)

// Huffman alphabet limits (§3, §4.3).
const (
	MaxSymbols    = 256
	MaxBitLength  = 15
)

// JST alphabet (§3).
const (
	RUNASymbol          uint16 = 0
	RUNBSymbol          uint16 = 1
	MinJumpSymbol       uint16 = 2
	MaxJumpSymbol       uint16 = 252
	SkipChunkSymbol     uint16 = 253
	EndOfSequenceSymbol uint16 = 254
	ShrinkStreamSymbol  uint16 = 255

	MinJumpSize uint16 = 2
	MaxJumpSize uint16 = MaxJumpSymbol - MinJumpSymbol + MinJumpSize // 252
)

// Block container field widths (§4.5).
const (
	BlockBwtPrimaryIndexFieldSize  = 24
	BlockHuffmanBitLengthFieldSize = 4
	BlockNumLiteralsFieldSize      = 24
	BlockNumJumpSequencesFieldSize = 16
)

// Top-level container field widths (§6.1).
const (
	NumBlocksFieldSize  = 16 // bits, but serialized as 2 LE bytes
	BlockLengthNumBytes = 3  // 24-bit LE block payload length
)
