package advanced

import "container/heap"

// Min-heap of point indexes keyed by (importance, index). The index tiebreak
// reproduces a linear scan for the first minimum: since the chain preserves
// order, the lowest original index is also the lowest surviving position.
//
// The queue tracks where each point sits in the heap so that a neighbor's
// key can be fixed in place after its importance changes.
type importanceQueue struct {
	importances []Importance
	items       []int
	slots       []int
}

const notQueued = -1

// Queue every unprotected point. The importances slice is shared, and
// callers must call update after changing an entry.
func newImportanceQueue(importances []Importance) *importanceQueue {
	q := &importanceQueue{
		importances: importances,
		items:       make([]int, 0, len(importances)),
		slots:       make([]int, len(importances)),
	}
	for i, importance := range importances {
		if importance.Protected {
			q.slots[i] = notQueued
			continue
		}
		q.slots[i] = len(q.items)
		q.items = append(q.items, i)
	}
	heap.Init(q)
	return q
}

func (q *importanceQueue) Len() int { return len(q.items) }

func (q *importanceQueue) Less(a, b int) bool {
	ia, ib := q.items[a], q.items[b]
	if q.importances[ia].Less(q.importances[ib]) {
		return true
	}
	if q.importances[ib].Less(q.importances[ia]) {
		return false
	}
	return ia < ib
}

func (q *importanceQueue) Swap(a, b int) {
	q.items[a], q.items[b] = q.items[b], q.items[a]
	q.slots[q.items[a]] = a
	q.slots[q.items[b]] = b
}

func (q *importanceQueue) Push(x interface{}) {
	i := x.(int)
	q.slots[i] = len(q.items)
	q.items = append(q.items, i)
}

func (q *importanceQueue) Pop() interface{} {
	last := len(q.items) - 1
	i := q.items[last]
	q.items = q.items[:last]
	q.slots[i] = notQueued
	return i
}

// Remove and return the point with the least importance.
func (q *importanceQueue) popMin() int {
	if q.Len() == 0 {
		fatalf("no removable points left")
	}
	return heap.Pop(q).(int)
}

// Restore heap order after the importance of i changed. A point that became
// protected leaves the queue for good.
func (q *importanceQueue) update(i int) {
	slot := q.slots[i]
	if slot == notQueued {
		return
	}
	if q.importances[i].Protected {
		heap.Remove(q, slot)
		return
	}
	heap.Fix(q, slot)
}
