package infection

import (
	"container/heap"

	"github.com/matzehuels/infection/pkg/member"
)

// candidate is a member waiting to be infected, scored against the infected
// set as it stood when the queue was last rebuilt.
type candidate struct {
	id      member.ID
	badness int
}

// candidateQueue is a min-heap ordered by (badness, id).
type candidateQueue []candidate

func (q candidateQueue) Len() int { return len(q) }

func (q candidateQueue) Less(i, j int) bool {
	if q[i].badness != q[j].badness {
		return q[i].badness < q[j].badness
	}
	return q[i].id < q[j].id
}

func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *candidateQueue) Push(x any) { *q = append(*q, x.(candidate)) }

func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// rescore builds a fresh queue from pool, scoring every candidate against
// the current infected set.
func rescore(g *member.Graph, pool member.Set, infected member.Set) candidateQueue {
	q := make(candidateQueue, 0, len(pool))
	for id := range pool {
		m, _ := g.Member(id)
		q = append(q, candidate{id: id, badness: Badness(m, infected)})
	}
	heap.Init(&q)
	return q
}
