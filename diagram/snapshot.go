package diagram

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a serializable image of a diagram. Entries are stored in
// identifier order, so restoring a snapshot reproduces the original
// identifiers and the original iteration order.
type Snapshot struct {
	// ID identifies the snapshot itself, not its content. Two snapshots
	// of the same diagram share a fingerprint but never an ID.
	ID uuid.UUID `msgpack:"id"`

	Actors       []string      `msgpack:"actors"`
	UseCases     []string      `msgpack:"use_cases"`
	Associations []Association `msgpack:"associations"`
}

// Take captures the current state of the diagram.
func Take(d *UseCaseDiagram) *Snapshot {
	s := &Snapshot{ID: uuid.New()}
	for _, a := range d.Actors() {
		s.Actors = append(s.Actors, a.Name)
	}
	for _, uc := range d.UseCases() {
		s.UseCases = append(s.UseCases, uc.Title)
	}
	for edge := range d.Associations() {
		s.Associations = append(s.Associations, edge)
	}
	return s
}

// Restore rebuilds a diagram from the snapshot. Identifiers are assigned in
// the captured order, so they match the diagram the snapshot was taken from.
func (s *Snapshot) Restore() (*UseCaseDiagram, error) {
	d := New()
	for _, name := range s.Actors {
		d.InsertActor(Actor{Name: name})
	}
	for _, title := range s.UseCases {
		d.InsertUseCase(UseCase{Title: title})
	}
	for _, edge := range s.Associations {
		if err := d.InsertAssociation(edge.Actor, edge.UseCase); err != nil {
			return nil, fmt.Errorf("diagram: restore snapshot: %w", err)
		}
	}
	return d, nil
}

// Encode returns the msgpack encoding of the snapshot.
func (s *Snapshot) Encode() ([]byte, error) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("diagram: encode snapshot: %w", err)
	}
	return b, nil
}

// Decode parses a msgpack-encoded snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("diagram: decode snapshot: %w", err)
	}
	return &s, nil
}

// Fingerprint returns a hex digest of the snapshot content. The snapshot ID
// is excluded, so equal diagrams produce equal fingerprints.
func (s *Snapshot) Fingerprint() (string, error) {
	content := struct {
		Actors       []string      `msgpack:"actors"`
		UseCases     []string      `msgpack:"use_cases"`
		Associations []Association `msgpack:"associations"`
	}{s.Actors, s.UseCases, s.Associations}
	b, err := msgpack.Marshal(content)
	if err != nil {
		return "", fmt.Errorf("diagram: fingerprint snapshot: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
