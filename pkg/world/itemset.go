package world

import (
	"fmt"
	"slices"
)

// ItemSet holds items keyed by name, remembering insertion order so listings are stable.
type ItemSet struct {
	order []string
	items map[string]*Item
}

func NewItemSet(items ...*Item) *ItemSet {
	s := &ItemSet{items: make(map[string]*Item, len(items))}
	for _, it := range items {
		// Duplicates in a literal world definition are a programming error.
		if err := s.Add(it); err != nil {
			panic(err)
		}
	}
	return s
}

// Add inserts an item. Names are unique within a set.
func (s *ItemSet) Add(it *Item) error {
	if it == nil {
		return fmt.Errorf("add nil item: %w", ErrNotFound)
	}
	if _, ok := s.items[it.Name]; ok {
		return fmt.Errorf("add %q: %w", it.Name, ErrDuplicate)
	}
	s.items[it.Name] = it
	s.order = append(s.order, it.Name)
	return nil
}

// Remove deletes and returns the named item.
func (s *ItemSet) Remove(name string) (*Item, error) {
	it, ok := s.items[name]
	if !ok {
		return nil, fmt.Errorf("remove %q: %w", name, ErrNotFound)
	}
	delete(s.items, name)
	s.order = slices.DeleteFunc(s.order, func(n string) bool { return n == name })
	return it, nil
}

func (s *ItemSet) Get(name string) (*Item, bool) {
	it, ok := s.items[name]
	return it, ok
}

func (s *ItemSet) Has(name string) bool {
	_, ok := s.items[name]
	return ok
}

func (s *ItemSet) Len() int {
	return len(s.order)
}

// Names returns a snapshot of item names in insertion order.
func (s *ItemSet) Names() []string {
	return slices.Clone(s.order)
}

// Items returns a snapshot of the items in insertion order.
func (s *ItemSet) Items() []*Item {
	out := make([]*Item, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.items[n])
	}
	return out
}

// UniqueName returns base if no set holds it, otherwise the first free "base 2", "base 3", ...
func (s *ItemSet) UniqueName(base string, others ...*ItemSet) string {
	taken := func(name string) bool {
		return s.Has(name) || slices.ContainsFunc(others, func(o *ItemSet) bool { return o.Has(name) })
	}
	if !taken(base) {
		return base
	}
	for n := 2; ; n++ {
		name := fmt.Sprintf("%s %d", base, n)
		if !taken(name) {
			return name
		}
	}
}
