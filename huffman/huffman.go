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

// Package huffman builds and (de)serializes length-limited canonical
// Huffman codes (§4.3). The tree is built in an arena (a flat node slice
// indexed by child position, not a pointer graph) per the design note in
// spec §9: every internal node is appended after both of its children, so
// tree depth can be computed with a single reverse scan from the root.
package huffman

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/vteromero/zjump"
)

// EncodedSymbol is a (symbol, bit_length, code_value) triple. A zero
// BitLength means "symbol absent" from the encoding.
type EncodedSymbol struct {
	Symbol    uint16
	BitLength uint8
	Value     uint16
}

// Encoding is a dense symbol -> EncodedSymbol mapping over
// [0, MaxSymbols).
type Encoding struct {
	maxSymbols   uint16
	maxBitLength uint8
	symbols      []EncodedSymbol // indexed by Symbol, BitLength==0 if absent
}

// NewEncoding creates an empty Encoding with every symbol absent.
func NewEncoding(maxSymbols uint16, maxBitLength uint8) *Encoding {
	e := &Encoding{
		maxSymbols:   maxSymbols,
		maxBitLength: maxBitLength,
		symbols:      make([]EncodedSymbol, maxSymbols),
	}
	for s := range e.symbols {
		e.symbols[s].Symbol = uint16(s)
	}
	return e
}

// setEncodedSymbols installs the present-symbol list built by a builder.
func (e *Encoding) setEncodedSymbols(enc []EncodedSymbol) {
	for _, s := range enc {
		e.symbols[s.Symbol] = s
	}
}

// Get returns the EncodedSymbol for symbol, or nil if absent.
func (e *Encoding) Get(symbol uint16) *EncodedSymbol {
	if e.symbols[symbol].BitLength == 0 {
		return nil
	}
	return &e.symbols[symbol]
}

// MaxSymbols returns the alphabet size this Encoding was built for.
func (e *Encoding) MaxSymbols() uint16 { return e.maxSymbols }

// MaxBitLength returns the length limit this Encoding was built under.
func (e *Encoding) MaxBitLength() uint8 { return e.maxBitLength }

// treeNode is an arena entry: a leaf (left == right == -1) carries the
// original symbol's index into the caller's symbols/freqs slices; an
// internal node points at two earlier arena entries.
type treeNode struct {
	count       uint32
	symbolIndex int // valid only for leaves (left == right == -1)
	left, right int // -1 if none
}

// createTree builds a Huffman tree over the given (symbol, freq) pairs in
// an arena: tree[0:len(symbols)] are the leaves (in the order given),
// tree[len(symbols):] are internal nodes in construction order, so a
// child's arena index is always less than its parent's.
func createTree(freqs []uint32) (tree []treeNode) {
	n := len(freqs)
	tree = make([]treeNode, n, n*2)

	for i := range freqs {
		tree[i] = treeNode{count: freqs[i], symbolIndex: i, left: -1, right: -1}
	}

	// Sort leaves by increasing count so the initial heap push order
	// matches the source's std::priority_queue seeding; the heap itself
	// makes this sort non-load-bearing for correctness, only determinism.
	leafOrder := make([]int, n)
	for i := range leafOrder {
		leafOrder[i] = i
	}
	sort.SliceStable(leafOrder, func(i, j int) bool {
		return tree[leafOrder[i]].count < tree[leafOrder[j]].count
	})

	pq := newMinHeap(n)
	for _, idx := range leafOrder {
		pq.push(idx, tree[idx].count)
	}

	for pq.len() > 1 {
		i1, c1 := pq.pop()
		i2, c2 := pq.pop()

		node := treeNode{count: c1 + c2, symbolIndex: -1, left: i1, right: i2}
		tree = append(tree, node)
		pq.push(len(tree)-1, node.count)
	}

	return tree
}

// setBitLengths assigns bit lengths to the first len(symbols) entries of
// tree (the leaves) by tree depth, computed via a single reverse scan: a
// child's depth is its parent's depth + 1, and because a parent is always
// appended after its children, scanning the arena back-to-front guarantees
// every parent's depth is already final when its children are visited.
func setBitLengths(numSymbols int, tree []treeNode, enc []EncodedSymbol) {
	if numSymbols == 1 {
		enc[0].BitLength = 1
		return
	}

	depth := make([]uint8, len(tree))

	for i := len(tree) - 1; i >= 0; i-- {
		if tree[i].left >= 0 {
			depth[tree[i].left] = depth[i] + 1
		}
		if tree[i].right >= 0 {
			depth[tree[i].right] = depth[i] + 1
		}
	}

	for i := 0; i < numSymbols; i++ {
		enc[i].BitLength = depth[i]
	}
}

// setMaxBitLength clamps/redistributes bit lengths so the Kraft sum fits
// within 2^maxBitLength, per the greedy algorithm of spec §4.3.1.
func setMaxBitLength(enc []EncodedSymbol, maxBitLength uint8) {
	var k uint32
	maxK := uint32(1) << maxBitLength

	for i := range enc {
		if enc[i].BitLength > maxBitLength {
			enc[i].BitLength = maxBitLength
		}
		k += uint32(1) << (maxBitLength - enc[i].BitLength)
	}

	for l := uint8(1); k > maxK && l < maxBitLength; l++ {
		for i := range enc {
			if enc[i].BitLength == l && k > maxK {
				enc[i].BitLength++
				k -= uint32(1) << (maxBitLength - enc[i].BitLength)
			}
		}
	}

	for l := maxBitLength; k < maxK && l > 1; l-- {
		inc := uint32(1) << (maxBitLength - l)
		for i := range enc {
			if enc[i].BitLength == l && k+inc <= maxK {
				k += inc
				enc[i].BitLength--
			}
		}
	}
}

// kraftSum returns Σ 2^(maxBitLength - len_i) over all present symbols.
func kraftSum(enc []EncodedSymbol, maxBitLength uint8) uint32 {
	var k uint32
	for i := range enc {
		k += uint32(1) << (maxBitLength - enc[i].BitLength)
	}
	return k
}

func setCanonicalOrder(enc []EncodedSymbol) {
	slices.SortFunc(enc, func(a, b EncodedSymbol) int {
		if a.BitLength != b.BitLength {
			return int(a.BitLength) - int(b.BitLength)
		}
		return int(a.Symbol) - int(b.Symbol)
	})
}

// setEncodedValues assigns canonical code values via the standard
// next_code[] procedure (Deflate RFC 1951 §3.2.2).
func setEncodedValues(enc []EncodedSymbol, maxBitLength uint8) {
	blCount := make([]uint16, maxBitLength+1)
	nextCode := make([]uint16, maxBitLength+1)

	for i := range enc {
		blCount[enc[i].BitLength]++
	}

	blCount[0] = 0
	var code uint32
	for l := uint8(1); l <= maxBitLength; l++ {
		code = (code + uint32(blCount[l-1])) << 1
		nextCode[l] = uint16(code)
	}

	for i := range enc {
		enc[i].Value = nextCode[enc[i].BitLength]
		nextCode[enc[i].BitLength]++
	}
}

// FrequencyBuilder builds a length-limited canonical Encoding from symbol
// frequencies.
type FrequencyBuilder struct {
	maxSymbols   uint16
	maxBitLength uint8
	freqs        []uint32
}

// NewFrequencyBuilder creates a builder over [0, maxSymbols) with the
// given code length limit.
func NewFrequencyBuilder(maxSymbols uint16, maxBitLength uint8) *FrequencyBuilder {
	return &FrequencyBuilder{
		maxSymbols:   maxSymbols,
		maxBitLength: maxBitLength,
		freqs:        make([]uint32, maxSymbols),
	}
}

// SetSymbolFrequency sets the frequency of symbol to freq.
func (b *FrequencyBuilder) SetSymbolFrequency(symbol uint16, freq uint32) {
	b.freqs[symbol] = freq
}

// AddSymbolFrequency adds freq to symbol's running frequency.
func (b *FrequencyBuilder) AddSymbolFrequency(symbol uint16, freq uint32) {
	b.freqs[symbol] += freq
}

// Build constructs the Encoding. Symbols with zero frequency are absent
// from the result. Returns a KindHuffman error if the post-adjustment
// Kraft sum does not equal 2^maxBitLength exactly (spec §9 flags this
// check as missing from the source and recommends adding it). A single
// present symbol gets length 1 and is not subject to this check.
func (b *FrequencyBuilder) Build() (*Encoding, error) {
	var symbols []uint16
	var freqs []uint32

	for s := uint16(0); ; s++ {
		if b.freqs[s] != 0 {
			symbols = append(symbols, s)
			freqs = append(freqs, b.freqs[s])
		}
		if s == b.maxSymbols-1 {
			break
		}
	}

	encoding := NewEncoding(b.maxSymbols, b.maxBitLength)

	if len(symbols) == 0 {
		return encoding, nil
	}

	tree := createTree(freqs)

	enc := make([]EncodedSymbol, len(symbols))
	for i := range enc {
		enc[i].Symbol = symbols[i]
	}

	setBitLengths(len(symbols), tree, enc)
	setMaxBitLength(enc, b.maxBitLength)

	if sum := kraftSum(enc, b.maxBitLength); len(enc) > 1 && sum != uint32(1)<<b.maxBitLength {
		return nil, zjump.NewError(zjump.KindHuffman, nil)
	}

	setCanonicalOrder(enc)
	setEncodedValues(enc, b.maxBitLength)

	encoding.setEncodedSymbols(enc)

	return encoding, nil
}

// BitLengthBuilder builds an Encoding from explicit (symbol, bit_length)
// pairs, used when deserializing a HuffmanReader result: only canonical
// code-value assignment runs, bit lengths are taken as given.
type BitLengthBuilder struct {
	maxSymbols   uint16
	maxBitLength uint8
	bitLengths   []uint8
}

// NewBitLengthBuilder creates a builder over [0, maxSymbols).
func NewBitLengthBuilder(maxSymbols uint16, maxBitLength uint8) *BitLengthBuilder {
	return &BitLengthBuilder{
		maxSymbols:   maxSymbols,
		maxBitLength: maxBitLength,
		bitLengths:   make([]uint8, maxSymbols),
	}
}

// SetSymbolBitLength sets symbol's bit length.
func (b *BitLengthBuilder) SetSymbolBitLength(symbol uint16, bitLength uint8) {
	b.bitLengths[symbol] = bitLength
}

// Build assigns canonical code values to every non-zero-length symbol.
func (b *BitLengthBuilder) Build() *Encoding {
	var enc []EncodedSymbol

	for s := uint16(0); ; s++ {
		if b.bitLengths[s] != 0 {
			enc = append(enc, EncodedSymbol{Symbol: s, BitLength: b.bitLengths[s]})
		}
		if s == b.maxSymbols-1 {
			break
		}
	}

	encoding := NewEncoding(b.maxSymbols, b.maxBitLength)

	if len(enc) > 0 {
		setEncodedValues(enc, b.maxBitLength)
		encoding.setEncodedSymbols(enc)
	}

	return encoding
}
