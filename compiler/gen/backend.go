package gen

import (
	"io"

	"github.com/syssam/butterflyc/diagram"
)

// Backend renders a diagram into target-language source. Implementations
// query the diagram read-only and write directly to the sink; a write
// failure is returned to the caller without being wrapped or inspected.
//
// Backends never fail because of diagram content: an empty diagram and use
// cases without associated actors are valid inputs.
type Backend interface {
	// Name returns the backend name, e.g. "purescript".
	Name() string

	// Filename returns the name of the file this backend generates for
	// the given config, relative to the target directory.
	Filename(cfg *Config) string

	// GeneratePortal writes the complete generated source for the
	// diagram to w.
	GeneratePortal(w io.Writer, d *diagram.UseCaseDiagram, cfg *Config) error
}
