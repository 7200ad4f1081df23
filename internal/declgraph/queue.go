package declgraph

// queue is a binary min-heap of node indexes. Sort uses it to pick
// the earliest declared of the nodes that are ready.
type queue struct {
	items []int
}

func newQueue(items []int) *queue {
	q := &queue{items: items}
	n := len(q.items)
	for i := n/2 - 1; i >= 0; i-- {
		q.down(i, n)
	}
	return q
}

func (q *queue) len() int {
	return len(q.items)
}

func (q *queue) push(x int) {
	q.items = append(q.items, x)
	q.up(len(q.items) - 1)
}

// pop removes and returns the smallest index.
func (q *queue) pop() int {
	n := len(q.items) - 1
	q.items[0], q.items[n] = q.items[n], q.items[0]
	q.down(0, n)
	x := q.items[n]
	q.items = q.items[:n]
	return x
}

func (q *queue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || q.items[j] >= q.items[i] {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		j = i
	}
}

func (q *queue) down(i, n int) {
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.items[j2] < q.items[j1] {
			j = j2 // right child
		}
		if q.items[j] >= q.items[i] {
			break
		}
		q.items[i], q.items[j] = q.items[j], q.items[i]
		i = j
	}
}
