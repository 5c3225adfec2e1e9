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

import "container/heap"

// minHeapItem pairs an arena index with its node count for the priority
// queue used by createTree (min-count-first extraction).
type minHeapItem struct {
	arenaIndex int
	count      uint32
}

type minHeap []minHeapItem

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].count < h[j].count }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(minHeapItem)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

type priorityQueue struct {
	h minHeap
}

func newMinHeap(capacity int) *priorityQueue {
	pq := &priorityQueue{h: make(minHeap, 0, capacity)}
	heap.Init(&pq.h)
	return pq
}

func (pq *priorityQueue) push(arenaIndex int, count uint32) {
	heap.Push(&pq.h, minHeapItem{arenaIndex: arenaIndex, count: count})
}

func (pq *priorityQueue) pop() (int, uint32) {
	item := heap.Pop(&pq.h).(minHeapItem)
	return item.arenaIndex, item.count
}

func (pq *priorityQueue) len() int {
	return pq.h.Len()
}
