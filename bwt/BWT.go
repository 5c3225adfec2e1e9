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

// Package bwt implements the external BWT contract (§6.2) that the block
// codec consumes: a forward transform that rearranges a block in place and
// returns a primary index, and its exact inverse. The suffix array backing
// the forward transform is Yuta Mori's SA-IS (see SA_IS.go); primary-index
// bookkeeping and the pointer-chasing inverse follow a single-chunk layout
// only, since a zjump block never exceeds MaxExpandedBlockSize bytes.
package bwt

import "github.com/vteromero/zjump"

// ForwardBWT rearranges buf in place into its Burrows-Wheeler transform and
// returns the primary index: the row of the (conceptually) sorted rotation
// matrix that the original, unrotated block occupies.
func ForwardBWT(buf []byte) (int, error) {
	count := len(buf)

	if count == 0 {
		return 0, nil
	}
	if count == 1 {
		return 0, nil
	}
	if count > zjump.MaxExpandedBlockSize {
		return 0, zjump.NewError(zjump.KindBWT, nil)
	}

	data := make([]int, count)
	for i, b := range buf {
		data[i] = int(b)
	}

	sa := make([]int, count)
	computeSuffixArray(data, sa, 0, count, 256)

	primaryIndex := -1
	out := make([]byte, count)

	n := 0
	for n < count {
		if sa[n] == 0 {
			primaryIndex = n
			break
		}

		out[n] = buf[sa[n]-1]
		n++
	}

	if primaryIndex < 0 {
		return 0, zjump.NewError(zjump.KindBWT, nil)
	}

	out[n] = buf[count-1]
	n++

	for n < count {
		out[n] = buf[sa[n]-1]
		n++
	}

	copy(buf, out)

	return primaryIndex, nil
}

// InverseBWT reconstructs buf in place from its Burrows-Wheeler transform
// and the primary index ForwardBWT returned for it.
func InverseBWT(buf []byte, primaryIndex int) error {
	count := len(buf)

	if count <= 1 {
		return nil
	}
	if primaryIndex < 0 || primaryIndex >= count {
		return zjump.NewFormatError(zjump.ReasonBWTPrimaryIndex, nil)
	}

	// data[i] packs, for row i of the sorted rotation matrix, the byte
	// value at that row's last column (low 8 bits) and the rank of that
	// occurrence among same-valued bytes (the remaining bits) — the
	// standard LF-mapping used to walk the rotations back to front.
	data := make([]uint32, count)
	var buckets [256]uint32

	val0 := uint32(buf[primaryIndex])
	data[primaryIndex] = val0
	buckets[val0]++

	for i := 0; i < primaryIndex; i++ {
		val := uint32(buf[i])
		data[i] = (buckets[val] << 8) | val
		buckets[val]++
	}

	for i := primaryIndex + 1; i < count; i++ {
		val := uint32(buf[i])
		data[i] = (buckets[val] << 8) | val
		buckets[val]++
	}

	sum := uint32(0)
	for i, b := range &buckets {
		buckets[i] = sum
		sum += b
	}

	out := make([]byte, count)
	idx := count - 1

	ptr := data[primaryIndex]
	out[idx] = byte(ptr)
	idx--

	for idx >= 0 {
		ptr = data[(ptr>>8)+buckets[ptr&0xFF]]
		out[idx] = byte(ptr)
		idx--
	}

	copy(buf, out)

	return nil
}
