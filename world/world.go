package world

import "onlinegame/object"

// Roster is the local copy of every known entity, kept in the order the
// store returned them.
type Roster struct {
	entities []*object.Entity
	byID     map[object.ID]*object.Entity
}

func NewRoster() *Roster {
	return &Roster{
		byID: make(map[object.ID]*object.Entity),
	}
}

// Replace discards the current content. Duplicate ids keep their order and
// the later one wins the lookup.
func (r *Roster) Replace(entities []*object.Entity) {
	r.entities = entities
	r.byID = make(map[object.ID]*object.Entity, len(entities))
	for _, e := range entities {
		r.byID[e.ID] = e
	}
}

func (r *Roster) Entity(ID object.ID) *object.Entity {
	return r.byID[ID]
}

func (r *Roster) FirstFree() *object.Entity {
	for _, e := range r.entities {
		if !e.Occupied {
			return e
		}
	}
	return nil
}

func (r *Roster) Len() int {
	return len(r.entities)
}

func (r *Roster) ForEachEntity(callback func(*object.Entity)) {
	for _, e := range r.entities {
		callback(e)
	}
}
