// Package diagram models use case diagrams: actors, use cases, and the
// permission associations between them. A diagram is the input of the
// butterflyc code generator.
package diagram

import (
	"fmt"
	"iter"
	"strconv"
)

// ActorId identifies an actor. Identifiers are unique within a single
// diagram and are never reused.
type ActorId int

// String returns the numeric form of the identifier.
func (id ActorId) String() string {
	return strconv.Itoa(int(id))
}

// UseCaseId identifies a use case. Identifiers are unique within a single
// diagram and are never reused.
type UseCaseId int

// String returns the numeric form of the identifier.
func (id UseCaseId) String() string {
	return strconv.Itoa(int(id))
}

// Actor is an external agent capable of invoking use cases. Actors are
// identified by their ActorId; names may repeat within a diagram.
type Actor struct {
	Name string
}

// UseCase is a discrete capability exposed by the modeled system. Use cases
// are identified by their UseCaseId; titles may repeat within a diagram.
type UseCase struct {
	Title string
}

// Association is a permission edge stating that an actor may invoke a
// use case.
type Association struct {
	Actor   ActorId
	UseCase UseCaseId
}

// UseCaseDiagram is an append-only aggregate of actors, use cases, and
// associations. It is the sole authority for mutation and enforces
// referential integrity: every association refers to an existing actor and
// an existing use case.
//
// A diagram is not safe for concurrent mutation. Concurrent readers are
// fine as long as no writer is active.
type UseCaseDiagram struct {
	nextActorId   ActorId
	nextUseCaseId UseCaseId

	actors   map[ActorId]Actor
	useCases map[UseCaseId]UseCase

	// assocIndex guards against duplicate edges; assocs preserves
	// insertion order for reproducible generation.
	assocIndex map[Association]struct{}
	assocs     []Association
}

// New returns an empty use case diagram.
func New() *UseCaseDiagram {
	d := &UseCaseDiagram{
		actors:     make(map[ActorId]Actor),
		useCases:   make(map[UseCaseId]UseCase),
		assocIndex: make(map[Association]struct{}),
	}
	d.assertInvariants()
	return d
}

// InsertActor appends a new actor and returns its identifier.
func (d *UseCaseDiagram) InsertActor(a Actor) ActorId {
	id := d.nextActorId
	d.nextActorId++
	d.actors[id] = a
	d.assertInvariants()
	return id
}

// InsertUseCase appends a new use case and returns its identifier.
func (d *UseCaseDiagram) InsertUseCase(uc UseCase) UseCaseId {
	id := d.nextUseCaseId
	d.nextUseCaseId++
	d.useCases[id] = uc
	d.assertInvariants()
	return id
}

// InsertAssociation appends the permission edge (actorId, useCaseId).
// It returns a NonexistentActorError if the actor is unknown, or a
// NonexistentUseCaseError if the use case is unknown; the actor is checked
// first. Inserting an existing association is a no-op. On error the diagram
// is left unchanged.
func (d *UseCaseDiagram) InsertAssociation(actorId ActorId, useCaseId UseCaseId) error {
	if _, ok := d.actors[actorId]; !ok {
		return &NonexistentActorError{ID: actorId}
	}
	if _, ok := d.useCases[useCaseId]; !ok {
		return &NonexistentUseCaseError{ID: useCaseId}
	}
	edge := Association{Actor: actorId, UseCase: useCaseId}
	if _, ok := d.assocIndex[edge]; !ok {
		d.assocIndex[edge] = struct{}{}
		d.assocs = append(d.assocs, edge)
	}
	d.assertInvariants()
	return nil
}

// Actor returns the actor with the given identifier.
func (d *UseCaseDiagram) Actor(id ActorId) (Actor, bool) {
	a, ok := d.actors[id]
	return a, ok
}

// UseCase returns the use case with the given identifier.
func (d *UseCaseDiagram) UseCase(id UseCaseId) (UseCase, bool) {
	uc, ok := d.useCases[id]
	return uc, ok
}

// Actors iterates over all actors in insertion order.
func (d *UseCaseDiagram) Actors() iter.Seq2[ActorId, Actor] {
	return func(yield func(ActorId, Actor) bool) {
		for id := ActorId(0); id < d.nextActorId; id++ {
			if a, ok := d.actors[id]; ok {
				if !yield(id, a) {
					return
				}
			}
		}
	}
}

// UseCases iterates over all use cases in insertion order.
func (d *UseCaseDiagram) UseCases() iter.Seq2[UseCaseId, UseCase] {
	return func(yield func(UseCaseId, UseCase) bool) {
		for id := UseCaseId(0); id < d.nextUseCaseId; id++ {
			if uc, ok := d.useCases[id]; ok {
				if !yield(id, uc) {
					return
				}
			}
		}
	}
}

// Associations iterates over all associations in insertion order.
func (d *UseCaseDiagram) Associations() iter.Seq[Association] {
	return func(yield func(Association) bool) {
		for _, edge := range d.assocs {
			if !yield(edge) {
				return
			}
		}
	}
}

// ActorCount returns the number of actors in the diagram.
func (d *UseCaseDiagram) ActorCount() int {
	return len(d.actors)
}

// UseCaseCount returns the number of use cases in the diagram.
func (d *UseCaseDiagram) UseCaseCount() int {
	return len(d.useCases)
}

// AssociationCount returns the number of distinct associations in the
// diagram.
func (d *UseCaseDiagram) AssociationCount() int {
	return len(d.assocs)
}

// assertInvariants panics if any association refers to a missing actor or
// use case. No sequence of public mutations can trip it; a panic here means
// a defect in the aggregate itself.
func (d *UseCaseDiagram) assertInvariants() {
	for _, edge := range d.assocs {
		if _, ok := d.actors[edge.Actor]; !ok {
			panic(fmt.Sprintf("diagram: invariant violation: association refers to nonexistent actor %s", edge.Actor))
		}
		if _, ok := d.useCases[edge.UseCase]; !ok {
			panic(fmt.Sprintf("diagram: invariant violation: association refers to nonexistent use case %s", edge.UseCase))
		}
	}
}
