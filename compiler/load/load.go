// Package load reads use case diagram documents and turns them into
// diagram aggregates for the generator.
package load

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/butterflyc/diagram"
)

// Document is a use case diagram as authored in YAML. Actors and use cases
// are listed by name; associations refer to them by name, which therefore
// must be unique within the document.
type Document struct {
	// Module is the generated module name. When empty, the driver
	// derives it from the document file name.
	Module string `yaml:"module"`
	// Portal is the generated portal value name. Optional.
	Portal string `yaml:"portal"`

	Actors       []string      `yaml:"actors"`
	UseCases     []string      `yaml:"use_cases"`
	Associations []Association `yaml:"associations"`
}

// Association is a permission edge of the document, by name.
type Association struct {
	Actor   string `yaml:"actor"`
	UseCase string `yaml:"use_case"`
}

// Parse decodes a document from r. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("load: decode document: %w", err)
	}
	return &doc, nil
}

// FromFile reads and decodes the document at path. When the document does
// not name a module, one is derived from the file base name.
func FromFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: open document: %w", err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if doc.Module == "" {
		base := filepath.Base(path)
		doc.Module = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}

// Diagram resolves the document into a use case diagram. Actors and use
// cases are inserted in document order, so generated output follows the
// document.
func (doc *Document) Diagram() (*diagram.UseCaseDiagram, error) {
	d := diagram.New()

	actorIds := make(map[string]diagram.ActorId, len(doc.Actors))
	for _, name := range doc.Actors {
		if _, ok := actorIds[name]; ok {
			return nil, &AmbiguousNameError{Kind: "actor", Name: name}
		}
		actorIds[name] = d.InsertActor(diagram.Actor{Name: name})
	}

	useCaseIds := make(map[string]diagram.UseCaseId, len(doc.UseCases))
	for _, title := range doc.UseCases {
		if _, ok := useCaseIds[title]; ok {
			return nil, &AmbiguousNameError{Kind: "use case", Name: title}
		}
		useCaseIds[title] = d.InsertUseCase(diagram.UseCase{Title: title})
	}

	for _, edge := range doc.Associations {
		actorId, ok := actorIds[edge.Actor]
		if !ok {
			return nil, &UnknownNameError{Kind: "actor", Name: edge.Actor}
		}
		useCaseId, ok := useCaseIds[edge.UseCase]
		if !ok {
			return nil, &UnknownNameError{Kind: "use case", Name: edge.UseCase}
		}
		if err := d.InsertAssociation(actorId, useCaseId); err != nil {
			return nil, fmt.Errorf("load: associate %q with %q: %w", edge.Actor, edge.UseCase, err)
		}
	}
	return d, nil
}
