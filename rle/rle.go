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

// Package rle implements RLE-1 (§4.2): a bijective base-2 run-length
// coding of maximal runs of the value 1 in a symbol stream, using two
// dedicated digit symbols RUN-A and RUN-B.
package rle

import "github.com/vteromero/zjump"

func appendRLE1(length uint32, out []uint16) []uint16 {
	runA := uint32(1)
	runB := uint32(2)

	for length > 0 {
		if length%runB == 0 {
			out = append(out, zjump.RUNBSymbol)
			length -= runB
		} else {
			out = append(out, zjump.RUNASymbol)
			length -= runA
		}

		runA = runB
		runB <<= 1
	}

	return out
}

// Encode replaces every maximal run of value-1 entries in in with its
// RUN-A/RUN-B digit encoding, leaving every other value untouched. A 0 in
// in passes through unchanged and Decode then reads it as a RUN-A digit,
// so Decode(Encode(in)) == in holds only for inputs without 0 (jst.Forward
// never emits 0).
func Encode(in []uint16) []uint16 {
	out := make([]uint16, 0, len(in))
	var runLen uint32

	for _, v := range in {
		if v == 1 {
			runLen++
			continue
		}

		if runLen > 0 {
			out = appendRLE1(runLen, out)
			runLen = 0
		}

		out = append(out, v)
	}

	if runLen > 0 {
		out = appendRLE1(runLen, out)
	}

	return out
}

func appendOnes(length uint32, out []uint16) []uint16 {
	for i := uint32(0); i < length; i++ {
		out = append(out, 1)
	}
	return out
}

// decodeRun consumes a maximal prefix of RUN-A/RUN-B symbols starting at
// in[i], returning the expanded run length and the index just past it.
func decodeRun(in []uint16, i int) (uint32, int) {
	p := uint32(1)
	var length uint32

	for i < len(in) {
		switch in[i] {
		case zjump.RUNASymbol:
			length += p
		case zjump.RUNBSymbol:
			length += p << 1
		default:
			return length, i
		}
		p <<= 1
		i++
	}

	return length, i
}

// Decode reverses Encode: every RUN-A/RUN-B digit group is expanded back
// into that many value-1 entries; all other symbols pass through
// unchanged.
func Decode(in []uint16) []uint16 {
	out := make([]uint16, 0, len(in))

	for i := 0; i < len(in); {
		if in[i] == zjump.RUNASymbol || in[i] == zjump.RUNBSymbol {
			var length uint32
			length, i = decodeRun(in, i)
			out = appendOnes(length, out)
		} else {
			out = append(out, in[i])
			i++
		}
	}

	return out
}
