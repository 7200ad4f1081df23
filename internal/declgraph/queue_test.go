package declgraph

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"
)

func verifyQueue(t *testing.T, q *queue, i int) {
	t.Helper()
	n := len(q.items)
	for _, j := range []int{2*i + 1, 2*i + 2} {
		if j >= n {
			continue
		}
		if q.items[j] < q.items[i] {
			t.Fatalf("heap invariant invalidated [%d] = %d > [%d] = %d", i, q.items[i], j, q.items[j])
		}
		verifyQueue(t, q, j)
	}
}

func TestQueueInit(t *testing.T) {
	q := newQueue([]int{5, 3, 9, 1, 7, 1})
	verifyQueue(t, q, 0)
	var got []int
	for q.len() > 0 {
		got = append(got, q.pop())
		verifyQueue(t, q, 0)
	}
	qt.Assert(t, qt.DeepEquals(got, []int{1, 1, 3, 5, 7, 9}))
}

func TestQueuePushPop(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	q := newQueue(nil)
	var want []int
	for range 100 {
		x := r.Intn(50)
		want = append(want, x)
		q.push(x)
		verifyQueue(t, q, 0)
	}
	slices.Sort(want)
	var got []int
	for q.len() > 0 {
		got = append(got, q.pop())
	}
	qt.Assert(t, qt.DeepEquals(got, want))
}
