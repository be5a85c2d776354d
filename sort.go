package strqueue

// Sort reorders the chain ascending under the configured comparator using a
// stable merge sort: ties keep their original relative order. The chain is
// detached, restructured by relinking only, and reattached with the tail
// re-derived from the new last node. No-op on a nil queue or fewer than two
// elements.
func (q *Queue) Sort() {
	if q == nil || q.head == nil || q.head.next == nil {
		return
	}
	q.head = mergeSort(q.head, q.opts.compare)
	n := q.head
	for n.next != nil {
		n = n.next
	}
	q.tail = n
}

func mergeSort(head *node, cmp CompareFunc) *node {
	if head == nil || head.next == nil {
		return head
	}
	front, back := splitChain(head)
	return mergeChains(mergeSort(front, cmp), mergeSort(back, cmp), cmp)
}

// splitChain cuts the chain in two with a fast/slow scan. The front half
// gets the extra node when the length is odd.
func splitChain(head *node) (front, back *node) {
	slow := head
	fast := head.next
	for fast != nil {
		fast = fast.next
		if fast != nil {
			slow = slow.next
			fast = fast.next
		}
	}
	front = head
	back = slow.next
	slow.next = nil
	return front, back
}

// mergeChains interleaves two sorted chains into one sorted chain. Equal
// heads take from a first, which is what makes the sort stable. The merge
// loops rather than recursing so chain length never bounds the stack.
func mergeChains(a, b *node, cmp CompareFunc) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	var head *node
	if cmp(a.value, b.value) <= 0 {
		head = a
		a = a.next
	} else {
		head = b
		b = b.next
	}
	tail := head
	for a != nil && b != nil {
		if cmp(a.value, b.value) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a == nil {
		tail.next = b
	} else {
		tail.next = a
	}
	return head
}
