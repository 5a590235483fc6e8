// Package golang generates Butterfly portals as self-contained Go packages.
//
// The generated package mirrors the PureScript portal contract: an Actions
// struct with one field per use case title, and a constructor building the
// ordered Button list with literal permitted-actor sets.
package golang

import (
	"io"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/butterflyc/compiler/gen"
	"github.com/syssam/butterflyc/diagram"
)

// Backend is the Go gen.Backend.
type Backend struct{}

// New returns the Go backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (*Backend) Name() string {
	return "go"
}

// Filename returns the output file name for the configured module.
func (*Backend) Filename(cfg *gen.Config) string {
	return strings.ToLower(gen.ExportedName(cfg.Module)) + ".go"
}

// GeneratePortal renders the portal package to w.
func (*Backend) GeneratePortal(w io.Writer, d *diagram.UseCaseDiagram, cfg *gen.Config) error {
	f, err := buildFile(d, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

func buildFile(d *diagram.UseCaseDiagram, cfg *gen.Config) (*jen.File, error) {
	portal := gen.BuildPortal(d, cfg.PortalName)

	fields, err := actionFields(portal)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(strings.ToLower(gen.ExportedName(cfg.Module)))
	f.HeaderComment("Code generated by butterflyc. DO NOT EDIT.")
	if cfg.Header != "" {
		f.HeaderComment(cfg.Header)
	}

	f.Comment("Action is an effectful callback bound to a use case.")
	f.Type().Id("Action").Func().Params()

	f.Comment("Button dispatches one use case, guarded by its permitted actors.")
	f.Type().Id("Button").Struct(
		jen.Id("Title").String(),
		jen.Id("Actors").Map(jen.String()).Struct(),
		jen.Id("Action").Id("Action"),
	)

	f.Comment("Portal is the ordered collection of buttons of this module.")
	f.Type().Id("Portal").Struct(
		jen.Id("Buttons").Index().Id("Button"),
	)

	f.Comment("Actions binds a callback to every use case of the diagram.")
	f.Type().Id("Actions").Struct(fieldDecls(portal, fields)...)

	ctor := "New" + gen.ExportedName(cfg.PortalName)
	f.Commentf("%s builds the portal from the given actions.", ctor)
	f.Func().Id(ctor).Params(jen.Id("actions").Id("Actions")).Id("Portal").Block(
		jen.Return(jen.Id("Portal").Values(jen.Dict{
			jen.Id("Buttons"): jen.Index().Id("Button").ValuesFunc(func(g *jen.Group) {
				for _, b := range portal.Buttons {
					g.Values(jen.Dict{
						jen.Id("Title"):  jen.Lit(b.Title),
						jen.Id("Actors"): actorSet(b),
						jen.Id("Action"): jen.Id("actions").Dot(fields[b.Title]),
					})
				}
			}),
		})),
	)

	return f, nil
}

// actionFields maps every use case title to its Actions field name and
// rejects titles that do not yield distinct Go identifiers.
func actionFields(portal *gen.Portal) (map[string]string, error) {
	fields := make(map[string]string, len(portal.Buttons))
	used := make(map[string]string, len(portal.Buttons))
	for _, b := range portal.Buttons {
		name := gen.ExportedName(b.Title)
		if name == "" {
			return nil, gen.NewGenerationError("go", "", "use case title "+strconv.Quote(b.Title)+" yields no identifier", nil)
		}
		if prev, ok := used[name]; ok {
			if prev == b.Title {
				return nil, gen.NewGenerationError("go", "", "duplicate use case title "+strconv.Quote(b.Title), nil)
			}
			return nil, gen.NewGenerationError("go", "", "use case titles "+strconv.Quote(prev)+" and "+strconv.Quote(b.Title)+" collide on identifier "+name, nil)
		}
		used[name] = b.Title
		fields[b.Title] = name
	}
	return fields, nil
}

func fieldDecls(portal *gen.Portal, fields map[string]string) []jen.Code {
	decls := make([]jen.Code, 0, len(portal.Buttons))
	for _, b := range portal.Buttons {
		decls = append(decls, jen.Id(fields[b.Title]).Id("Action"))
	}
	return decls
}

func actorSet(b *gen.Button) jen.Code {
	return jen.Map(jen.String()).Struct().Values(jen.DictFunc(func(d jen.Dict) {
		for _, name := range b.Actors {
			d[jen.Lit(name)] = jen.Values()
		}
	}))
}

var _ gen.Backend = (*Backend)(nil)
