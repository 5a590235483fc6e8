// Package purescript generates Butterfly portal modules in PureScript.
//
// The generated module exports a single portal value: a function from a
// record of actions, one field per use case title, to a Portal of Buttons
// guarded by their permitted-actor sets.
package purescript

import (
	"fmt"
	"io"

	"github.com/syssam/butterflyc/compiler/gen"
	"github.com/syssam/butterflyc/diagram"
)

// GenerateModuleHeader generates a module header.
func GenerateModuleHeader(w io.Writer, name string) error {
	_, err := fmt.Fprintf(w, "module %s where\n", name)
	return err
}

// GenerateImports generates the imports necessary for the other generated
// code. The list is fixed: it names the Butterfly runtime support modules,
// not anything derived from the diagram.
func GenerateImports(w io.Writer) error {
	for _, line := range []string{
		"import Prelude\n",
		"import Data.List as List\n",
		"import Data.Set as Set\n",
		"import Butterfly.Actor (Actor (..))\n",
		"import Butterfly.Portal (Button (..), Portal (..))\n",
	} {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// GeneratePortalDefinition generates the portal definition for a diagram:
// the type signature listing every use case title as an action field, and
// the value constructing one Button per use case in diagram order.
func GeneratePortalDefinition(w io.Writer, d *diagram.UseCaseDiagram, name string) error {
	if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  :: ∀ f\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "   . {"); err != nil {
		return err
	}
	i := 0
	for _, uc := range d.UseCases() {
		sep := "\n     , "
		if i == 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(w, "%s%q :: f Unit", sep, uc.Title); err != nil {
			return err
		}
		i++
	}
	if _, err := io.WriteString(w, " }\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  -> Portal f\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s actions =\n", name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "  Portal <<< List.fromFoldable $\n"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "    ["); err != nil {
		return err
	}
	i = 0
	for id, uc := range d.UseCases() {
		sep := "\n    , "
		if i == 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(w, "%sButton %q\n", sep, uc.Title); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "             (Set.fromFoldable\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "                ["); err != nil {
			return err
		}
		if err := generateActorSet(w, d, id); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " ])\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "             actions.%q", uc.Title); err != nil {
			return err
		}
		i++
	}
	if _, err := io.WriteString(w, " ]\n"); err != nil {
		return err
	}
	return nil
}

// generateActorSet writes the permitted actors of one use case: every actor
// name bound to it by an association, duplicate-free, in association
// insertion order.
func generateActorSet(w io.Writer, d *diagram.UseCaseDiagram, useCaseId diagram.UseCaseId) error {
	i := 0
	seen := make(map[string]struct{})
	for edge := range d.Associations() {
		if edge.UseCase != useCaseId {
			continue
		}
		a, ok := d.Actor(edge.Actor)
		if !ok {
			// Unreachable: the diagram guarantees referential integrity.
			panic("purescript: association refers to nonexistent actor " + edge.Actor.String())
		}
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		sep := "\n                , "
		if i == 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(w, "%sActor %q", sep, a.Name); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Backend is the PureScript gen.Backend.
type Backend struct{}

// New returns the PureScript backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (*Backend) Name() string {
	return "purescript"
}

// Filename returns the output file name for the configured module.
func (*Backend) Filename(cfg *gen.Config) string {
	return cfg.Module + ".purs"
}

// GeneratePortal writes the complete portal module: generated-code marker,
// optional header, module header, imports, and the portal definition.
func (*Backend) GeneratePortal(w io.Writer, d *diagram.UseCaseDiagram, cfg *gen.Config) error {
	if _, err := io.WriteString(w, "-- Code generated by butterflyc. DO NOT EDIT.\n"); err != nil {
		return err
	}
	if cfg.Header != "" {
		if _, err := fmt.Fprintf(w, "-- %s\n", cfg.Header); err != nil {
			return err
		}
	}
	if err := GenerateModuleHeader(w, cfg.Module); err != nil {
		return err
	}
	if err := GenerateImports(w); err != nil {
		return err
	}
	return GeneratePortalDefinition(w, d, cfg.PortalName)
}

var _ gen.Backend = (*Backend)(nil)
