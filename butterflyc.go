// Package butterflyc compiles use case diagrams into permission-gated UI
// portals for the Butterfly runtime.
//
// The typical entry point is Generate, which loads a YAML diagram document,
// builds the diagram aggregate, and runs one or more generation backends
// against it:
//
//	err := butterflyc.Generate(ctx, "portal.yaml",
//		[]gen.Backend{purescript.New()},
//		gen.WithTarget("./out"),
//	)
//
// Lower layers are usable on their own: package diagram holds the
// aggregate, compiler/load the document format, and compiler/gen the
// generation contract and backends.
package butterflyc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/syssam/butterflyc/compiler/gen"
	"github.com/syssam/butterflyc/compiler/load"
	"github.com/syssam/butterflyc/diagram"
)

// snapshotFile is the name of the diagram snapshot stored next to the
// generated files, used to detect unchanged diagrams.
const snapshotFile = ".butterflyc.snap"

// Generate loads the diagram document at path and runs every backend
// against it. Module and portal names default to the document's; options
// may override them and must include the target directory. On success a
// snapshot of the diagram is stored in the target directory for UpToDate.
func Generate(ctx context.Context, path string, backends []gen.Backend, opts ...gen.Option) error {
	doc, d, err := loadDiagram(path)
	if err != nil {
		return err
	}

	cfg, err := config(doc, opts)
	if err != nil {
		return err
	}

	w, err := gen.NewWriter(d, cfg, backends...)
	if err != nil {
		return err
	}
	if err := w.GenerateAll(ctx); err != nil {
		return err
	}
	return storeSnapshot(d, cfg.Target)
}

// UpToDate reports whether the diagram document at path matches the
// snapshot stored in the target directory. A missing or unreadable
// snapshot counts as out of date.
func UpToDate(path, target string) (bool, error) {
	_, d, err := loadDiagram(path)
	if err != nil {
		return false, err
	}
	fp, err := diagram.Take(d).Fingerprint()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(filepath.Join(target, snapshotFile))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("butterflyc: read snapshot: %w", err)
	}
	stored, err := diagram.Decode(data)
	if err != nil {
		return false, nil
	}
	storedFp, err := stored.Fingerprint()
	if err != nil {
		return false, err
	}
	return fp == storedFp, nil
}

func loadDiagram(path string) (*load.Document, *diagram.UseCaseDiagram, error) {
	doc, err := load.FromFile(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := doc.Diagram()
	if err != nil {
		return nil, nil, err
	}
	return doc, d, nil
}

// config builds the generation config from the document defaults plus the
// caller's options. Raw document module names (typically file base names)
// are normalized into valid module names.
func config(doc *load.Document, opts []gen.Option) (*gen.Config, error) {
	module := doc.Module
	if !gen.ValidModuleName(module) {
		module = gen.ModuleName(module)
	}
	defaults := []gen.Option{gen.WithModule(module)}
	if doc.Portal != "" {
		defaults = append(defaults, gen.WithPortalName(doc.Portal))
	}
	return gen.NewConfig(append(defaults, opts...)...)
}

func storeSnapshot(d *diagram.UseCaseDiagram, target string) error {
	b, err := diagram.Take(d).Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(target, snapshotFile), b, 0o644); err != nil {
		return fmt.Errorf("butterflyc: write snapshot: %w", err)
	}
	return nil
}
