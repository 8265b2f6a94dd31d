package exercises

import "github.com/AntonioJCosta/drills/internal/core/domain/record"

/*
GroupAndCount collapses items into one GroupedRecord per distinct
(brand, name) pair, with Count set to the number of occurrences.
Groups appear in the order their key was first seen.
*/
func GroupAndCount(items []record.Record) []record.GroupedRecord {
	counter := newOrderedCounter(len(items))
	for _, item := range items {
		counter.add(item)
	}
	return counter.values()
}

// orderedCounter is a map from key to slot plus the slots in insertion order.
type orderedCounter struct {
	index  map[record.Key]int
	groups []record.GroupedRecord
}

func newOrderedCounter(capacity int) *orderedCounter {
	return &orderedCounter{
		index:  make(map[record.Key]int, capacity),
		groups: make([]record.GroupedRecord, 0, capacity),
	}
}

func (c *orderedCounter) add(r record.Record) {
	if slot, ok := c.index[r.Key()]; ok {
		c.groups[slot].Count++
		return
	}
	c.index[r.Key()] = len(c.groups)
	c.groups = append(c.groups, record.GroupedRecord{Record: r, Count: 1})
}

func (c *orderedCounter) values() []record.GroupedRecord {
	return c.groups
}
