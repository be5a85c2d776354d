// Package strqueue implements a singly linked queue of owned strings with
// head and tail insertion, head removal, in-place reversal, and a stable
// ascending merge sort using natural (human) ordering by default.
//
// A Queue is owned by a single caller context; none of its operations are
// safe for concurrent use. Every element reservation is paired with exactly
// one release, on every path, so an external gate simulating allocation
// failure (see AllocGate) never leaves partial state behind.
package strqueue

import "errors"

// ErrNilQueue is returned by mutating operations invoked on a nil queue.
var ErrNilQueue = errors.New("strqueue: nil queue")

type node struct {
	value string
	next  *node
}

// Queue is a singly linked FIFO chain of strings. head owns the chain, tail
// is a non-owning reference to the last node kept so tail insertion is O(1),
// and size is maintained by every mutator so Len never traverses.
//
// The zero Queue is not usable; construct with New. After Free the queue
// must not be used again.
type Queue struct {
	head *node
	tail *node
	size int
	opts options
}

// New creates an empty queue. It returns nil only when an installed
// allocation gate rejects the queue reservation.
func New(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := reserve(&o, SiteQueue); err != nil {
		return nil
	}
	return &Queue{opts: o}
}

// Free releases every node, value before node, from head to tail, then the
// queue reservation itself. Calling Free on a nil queue is a no-op.
func (q *Queue) Free() {
	if q == nil {
		return
	}
	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		release(&q.opts, SiteValue)
		release(&q.opts, SiteNode)
		n = next
	}
	q.head = nil
	q.tail = nil
	q.size = 0
	release(&q.opts, SiteQueue)
}

// PushFront inserts a copy of value before the current head. On failure the
// queue is left exactly as it was.
func (q *Queue) PushFront(value string) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.newNode(value)
	if err != nil {
		return err
	}
	if q.head == nil {
		q.tail = n
	}
	n.next = q.head
	q.head = n
	q.size++
	return nil
}

// PushBack appends a copy of value after the current tail. On failure the
// queue is left exactly as it was.
func (q *Queue) PushBack(value string) error {
	if q == nil {
		return ErrNilQueue
	}
	n, err := q.newNode(value)
	if err != nil {
		return err
	}
	if q.head == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
	return nil
}

// PopFront removes the first element and returns its value. It returns
// false, without mutating anything, when the queue is nil or empty.
func (q *Queue) PopFront() (string, bool) {
	n, ok := q.detachFront()
	if !ok {
		return "", false
	}
	value := n.value
	q.releaseNode(n)
	return value, true
}

// PopFrontInto removes the first element and copies its value into buf:
// up to len(buf)-1 bytes followed by a 0x00 terminator. Values longer than
// the buffer are truncated silently. A nil or empty buf discards the value.
// Returns false, without mutating anything, when the queue is nil or empty.
func (q *Queue) PopFrontInto(buf []byte) bool {
	n, ok := q.detachFront()
	if !ok {
		return false
	}
	if len(buf) > 0 {
		c := copy(buf[:len(buf)-1], n.value)
		buf[c] = 0
	}
	q.releaseNode(n)
	return true
}

// Len returns the number of elements, 0 for a nil queue.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

// Reverse relinks the chain in place so the old tail becomes the head.
// It allocates and frees nothing. No-op on a nil or empty queue.
func (q *Queue) Reverse() {
	if q == nil || q.head == nil {
		return
	}
	var prev *node
	current := q.head
	q.tail = q.head
	for current != nil {
		next := current.next
		current.next = prev
		prev = current
		current = next
	}
	q.head = prev
}

// detachFront unlinks the first node and fixes head, tail and size. The
// caller owns the returned node and must release it.
func (q *Queue) detachFront() (*node, bool) {
	if q == nil || q.head == nil {
		return nil, false
	}
	n := q.head
	q.head = n.next
	if n.next == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n, true
}
