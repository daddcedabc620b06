package degrees

// queue is a FIFO of actor indices backed by one reusable slice.
// Each actor is enqueued at most once per query, so capacity never exceeds
// the actor count and reset keeps the allocation for the next query.
type queue struct {
	items []int
	head  int
}

func (q *queue) push(i int) { q.items = append(q.items, i) }

// pop removes the oldest item. Callers check empty first.
func (q *queue) pop() int {
	i := q.items[q.head]
	q.head++
	return i
}

func (q *queue) empty() bool { return q.head == len(q.items) }

func (q *queue) len() int { return len(q.items) - q.head }

func (q *queue) reset() {
	q.items = q.items[:0]
	q.head = 0
}
