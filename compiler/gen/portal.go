package gen

import (
	"github.com/syssam/butterflyc/diagram"
)

// Button is one entry of a generated portal: a use case title, the set of
// actor names permitted to invoke it, and the action bound to it by the
// caller of the generated code.
type Button struct {
	// UseCase is the identifier of the use case this button dispatches.
	UseCase diagram.UseCaseId
	// Title is the use case title, used both as the button label and as
	// the selector of the bound action.
	Title string
	// Actors holds the permitted actor names, duplicate-free, in the
	// order their first association was inserted.
	Actors []string
}

// Portal is the intermediate model of a generated dispatcher: one button
// per use case, in use case insertion order.
type Portal struct {
	// Name is the name of the generated portal value.
	Name string
	// Buttons holds one entry per use case of the diagram.
	Buttons []*Button
}

// BuildPortal computes the portal model for a diagram. The permitted-actor
// sets are derived from a single pass over the association sequence, so the
// cost is linear in the diagram size.
//
// Actors sharing a name collapse into one entry per button. The generated
// target collects actor names into a set, so distinct actors with equal
// names are indistinguishable there; the model mirrors that.
func BuildPortal(d *diagram.UseCaseDiagram, name string) *Portal {
	index := make(map[diagram.UseCaseId][]diagram.ActorId)
	for edge := range d.Associations() {
		index[edge.UseCase] = append(index[edge.UseCase], edge.Actor)
	}

	p := &Portal{Name: name}
	for id, uc := range d.UseCases() {
		b := &Button{UseCase: id, Title: uc.Title}
		seen := make(map[string]struct{})
		for _, actorId := range index[id] {
			// Invariant: every association resolves to an actor.
			a, ok := d.Actor(actorId)
			if !ok {
				panic("gen: association refers to nonexistent actor " + actorId.String())
			}
			if _, dup := seen[a.Name]; dup {
				continue
			}
			seen[a.Name] = struct{}{}
			b.Actors = append(b.Actors, a.Name)
		}
		p.Buttons = append(p.Buttons, b)
	}
	return p
}
