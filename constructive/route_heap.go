package constructive

import "container/heap"

// candidate is one tentative engine/stockpile visit produced by a per-engine
// route pass, ordered by AccessTime for the cross-engine merge in SetRoutes.
// Ties break on Engine then Stockpile for determinism, plain float
// comparison alone would make the merge order depend on map/slice iteration,
// which §5 forbids for anything that affects the output.
type candidate struct {
	AccessTime float64
	Engine     int
	Stockpile  int
	Activity   byte
}

// candidateHeap is a min-heap of candidates ordered by access time, adapted
// from the teacher's EventHeap (sim/cluster/event_heap.go): same
// Len/Less/Swap/Push/Pop shape, reused here to drain per-engine route
// entries in global access-time order the way PreModel/PostModel's Python
// heapq.heapify + heappop loop does.
type candidateHeap struct {
	items []candidate
}

func newCandidateHeap(items []candidate) *candidateHeap {
	h := &candidateHeap{items: items}
	heap.Init(h)
	return h
}

func (h *candidateHeap) Len() int { return len(h.items) }

func (h *candidateHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.AccessTime != b.AccessTime {
		return a.AccessTime < b.AccessTime
	}
	if a.Engine != b.Engine {
		return a.Engine < b.Engine
	}
	return a.Stockpile < b.Stockpile
}

func (h *candidateHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *candidateHeap) Push(x any) { h.items = append(h.items, x.(candidate)) }

func (h *candidateHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

func (h *candidateHeap) popNext() (candidate, bool) {
	if h.Len() == 0 {
		return candidate{}, false
	}
	return heap.Pop(h).(candidate), true
}
