package asteroids

// World is the single registry of live entities.
//
// Entities are stored by ID in insertion order, with an index per role
// derived from each entity's tags. Spawned entities are queued and become
// visible only at the next Flush; killed entities stay visible until then.
// Flush commits both at once, so no caller ever sees an entity alive in one
// index and gone from another.
type World struct {
	nextID   EntityID
	entities map[EntityID]Entity
	order    []EntityID
	index    map[Role][]EntityID
	pending  []Entity
}

var indexedRoles = []Role{RoleUpdatable, RoleDrawable, RoleAsteroid, RoleProjectile}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]Entity),
		index:    make(map[Role][]EntityID),
	}
}

// Spawn assigns e an ID and queues it for the next Flush.
func (w *World) Spawn(e Entity) EntityID {
	w.nextID++
	e.Body().id = w.nextID
	w.pending = append(w.pending, e)
	return w.nextID
}

// Flush removes dead entities from every index and commits queued spawns.
// It returns how many entities were removed.
func (w *World) Flush() int {
	removed := 0
	live := w.order[:0]
	for _, id := range w.order {
		if w.entities[id].Body().Alive() {
			live = append(live, id)
			continue
		}
		delete(w.entities, id)
		removed++
	}
	w.order = live

	for _, e := range w.pending {
		if !e.Body().Alive() {
			continue
		}
		id := e.Body().ID()
		w.entities[id] = e
		w.order = append(w.order, id)
	}
	w.pending = w.pending[:0]

	w.reindex()
	return removed
}

func (w *World) reindex() {
	for _, r := range indexedRoles {
		w.index[r] = w.index[r][:0]
	}
	for _, id := range w.order {
		roles := w.entities[id].Roles()
		for _, r := range indexedRoles {
			if roles.Has(r) {
				w.index[r] = append(w.index[r], id)
			}
		}
	}
}

// Get returns a committed entity by ID.
func (w *World) Get(id EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Members returns the committed entities with role r in insertion order.
// The slice is a copy and stays valid across Spawn and Flush.
func (w *World) Members(r Role) []Entity {
	ids := w.index[r]
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entities[id])
	}
	return out
}

// Count returns the number of committed entities with role r.
func (w *World) Count(r Role) int {
	return len(w.index[r])
}

// Len returns the number of committed entities.
func (w *World) Len() int {
	return len(w.order)
}
