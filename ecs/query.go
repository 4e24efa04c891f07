package ecs

// Query returns the entities holding every listed kind, ordered by the
// smallest store's dense order.
func Query(w *World, kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s == nil {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.Len())
outer:
	for _, id := range smallest.denseIDs {
		for _, s := range sets {
			if !s.Has(id) {
				continue outer
			}
		}
		out = append(out, w.entities.entity(id))
	}
	return out
}
