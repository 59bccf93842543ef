package sector

// Walk calls f for every item of the tile, depth first in source order.
// Top level items have depth 1. Walk stops early when f returns false.
func (t *Tile) Walk(f func(depth int, it *Item) bool) bool {
	return walkItems(t.Content, 1, f)
}

func walkItems(items []*Item, depth int, f func(int, *Item) bool) bool {
	for _, it := range items {
		if !f(depth, it) {
			return false
		}
		if !walkItems(it.Content, depth+1, f) {
			return false
		}
	}
	return true
}

// Stats summarizes a sector.
type Stats struct {
	Tiles      int
	Items      int
	Containers int
	MaxDepth   int
}

func (s *Sector) Stats() Stats {
	st := Stats{Tiles: len(s.Tiles)}
	for _, t := range s.Tiles {
		t.Walk(func(depth int, it *Item) bool {
			st.Items++
			if it.Content != nil {
				st.Containers++
			}
			st.MaxDepth = max(st.MaxDepth, depth)
			return true
		})
	}
	return st
}

// Count returns how many items with the given id the tile holds at any
// depth.
func (t *Tile) Count(id int) int {
	n := 0
	t.Walk(func(_ int, it *Item) bool {
		if it.ID == id {
			n++
		}
		return true
	})
	return n
}

// Depth returns the nesting depth of the tile's content, 0 when empty.
func (t *Tile) Depth() int {
	d := 0
	t.Walk(func(depth int, _ *Item) bool {
		d = max(d, depth)
		return true
	})
	return d
}
