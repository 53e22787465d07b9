package stn

// clock is a monotonic logical sequence counter stamped onto every
// mutation for audit-log ordering. It has no bearing on solver
// semantics. A Schedule is never shared across goroutines, so this is
// a plain counter rather than an atomic.
type clock struct {
	seq int64
}

func (c *clock) next() int64 {
	c.seq++
	return c.seq
}

func (c *clock) current() int64 {
	return c.seq
}
