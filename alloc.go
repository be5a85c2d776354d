package strqueue

// Site identifies one of the queue's allocation points.
type Site int

const (
	// SiteQueue is the reservation of the queue structure itself.
	SiteQueue Site = iota
	// SiteNode is the reservation of a chain node.
	SiteNode
	// SiteValue is the reservation of a node's owned value storage.
	SiteValue
)

// AllocGate is consulted before each reservation. A non-nil error makes the
// enclosing operation fail as if the allocation itself had failed; the error
// is returned to the caller unchanged and the queue is left untouched.
type AllocGate func(site Site) error

// reserve asks the gate for permission and records the reservation.
func reserve(o *options, site Site) error {
	if o.gate != nil {
		if err := o.gate(site); err != nil {
			return err
		}
	}
	switch site {
	case SiteQueue:
		o.track.ReserveQueue()
	case SiteNode:
		o.track.ReserveNode()
	case SiteValue:
		o.track.ReserveValue()
	}
	return nil
}

// release records that a reservation has been given back.
func release(o *options, site Site) {
	switch site {
	case SiteQueue:
		o.track.ReleaseQueue()
	case SiteNode:
		o.track.ReleaseNode()
	case SiteValue:
		o.track.ReleaseValue()
	}
}

// newNode reserves a node and the owned copy of its value. When the value
// reservation fails, the node reservation is released before returning so
// no partial allocation survives the failed insert.
func (q *Queue) newNode(value string) (*node, error) {
	if err := reserve(&q.opts, SiteNode); err != nil {
		return nil, err
	}
	if err := reserve(&q.opts, SiteValue); err != nil {
		release(&q.opts, SiteNode)
		return nil, err
	}
	return &node{value: value}, nil
}

// releaseNode gives back a detached node, value before node.
func (q *Queue) releaseNode(n *node) {
	n.next = nil
	release(&q.opts, SiteValue)
	release(&q.opts, SiteNode)
}
