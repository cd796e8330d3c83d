package network

import "container/heap"

type queueItem struct {
	id     int
	name   string
	weight float64
	index  int
}

// nodeQueue is a min-heap of node ids with decrease-key. entries[id] points at the
// queued item of a node, nil when it is not queued.
type nodeQueue struct {
	items   []*queueItem
	entries []*queueItem
}

func newNodeQueue(size int) *nodeQueue {
	return &nodeQueue{
		items:   make([]*queueItem, 0, 16),
		entries: make([]*queueItem, size),
	}
}

func (q *nodeQueue) Len() int { return len(q.items) }

// Less orders by weight, then by node name so equal weights pop deterministically.
func (q *nodeQueue) Less(i, j int) bool {
	if q.items[i].weight != q.items[j].weight {
		return q.items[i].weight < q.items[j].weight
	}
	return q.items[i].name < q.items[j].name
}

func (q *nodeQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *nodeQueue) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(q.items)
	q.items = append(q.items, item)
}

func (q *nodeQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	q.items = old[:n-1]
	return item
}

func (q *nodeQueue) contains(id int) bool {
	return q.entries[id] != nil
}

// weightOf is only meaningful when contains(id).
func (q *nodeQueue) weightOf(id int) float64 {
	return q.entries[id].weight
}

func (q *nodeQueue) insert(id int, name string, weight float64) {
	item := &queueItem{id: id, name: name, weight: weight}
	q.entries[id] = item
	heap.Push(q, item)
}

func (q *nodeQueue) decrease(id int, weight float64) {
	item := q.entries[id]
	item.weight = weight
	heap.Fix(q, item.index)
}

func (q *nodeQueue) popMin() (int, float64) {
	item := heap.Pop(q).(*queueItem)
	q.entries[item.id] = nil
	return item.id, item.weight
}
