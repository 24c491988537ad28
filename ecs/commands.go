package ecs

// Commands buffers structural changes made while systems iterate, so that
// no query sees an entity appear or vanish mid-pass. The zero value is
// ready to use.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

func (c *Commands) Delete(id EntityId) {
	c.deletes = append(c.deletes, id)
}

// Defer runs fn after the buffered deletes and spawns.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of buffered commands.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred calls, and empties the
// buffer. Deferred calls may buffer further commands; they wait for the
// next Flush.
func (c *Commands) Flush(storage *Storage) {
	deletes, spawns, defers := c.deletes, c.spawns, c.defers
	c.deletes, c.spawns, c.defers = nil, nil, nil

	for _, id := range deletes {
		storage.Delete(id)
	}
	for _, components := range spawns {
		storage.Spawn(components...)
	}
	for _, fn := range defers {
		fn()
	}
}
