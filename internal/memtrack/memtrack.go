// Package memtrack counts reservations and releases for the queue's three
// allocation sites. The counters let tests prove that every reservation is
// released exactly once on every path, including failed inserts and
// teardown.
package memtrack

import "sync/atomic"

// Counters accumulates reservation and release counts per site.
type Counters struct {
	queueReserved atomic.Uint64
	queueReleased atomic.Uint64
	nodeReserved  atomic.Uint64
	nodeReleased  atomic.Uint64
	valueReserved atomic.Uint64
	valueReleased atomic.Uint64
}

var defaultCounters Counters

// Default returns the package-wide counters used by queues that were not
// given their own instance.
func Default() *Counters {
	return &defaultCounters
}

func (c *Counters) ReserveQueue() { c.queueReserved.Add(1) }
func (c *Counters) ReleaseQueue() { c.queueReleased.Add(1) }
func (c *Counters) ReserveNode()  { c.nodeReserved.Add(1) }
func (c *Counters) ReleaseNode()  { c.nodeReleased.Add(1) }
func (c *Counters) ReserveValue() { c.valueReserved.Add(1) }
func (c *Counters) ReleaseValue() { c.valueReleased.Add(1) }

// Snapshot is a point-in-time copy of the counter values.
type Snapshot struct {
	QueueReserved uint64
	QueueReleased uint64
	NodeReserved  uint64
	NodeReleased  uint64
	ValueReserved uint64
	ValueReleased uint64
}

// Snapshot returns the collected values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		QueueReserved: c.queueReserved.Load(),
		QueueReleased: c.queueReleased.Load(),
		NodeReserved:  c.nodeReserved.Load(),
		NodeReleased:  c.nodeReleased.Load(),
		ValueReserved: c.valueReserved.Load(),
		ValueReleased: c.valueReleased.Load(),
	}
}

// LiveNodes returns the number of nodes reserved but not yet released.
func (c *Counters) LiveNodes() int64 {
	return int64(c.nodeReserved.Load()) - int64(c.nodeReleased.Load())
}

// Balanced reports whether every reservation at every site has been
// released.
func (c *Counters) Balanced() bool {
	s := c.Snapshot()
	return s.QueueReserved == s.QueueReleased &&
		s.NodeReserved == s.NodeReleased &&
		s.ValueReserved == s.ValueReleased
}

// Reset zeroes all counters.
func (c *Counters) Reset() {
	c.queueReserved.Store(0)
	c.queueReleased.Store(0)
	c.nodeReserved.Store(0)
	c.nodeReleased.Store(0)
	c.valueReserved.Store(0)
	c.valueReleased.Store(0)
}
