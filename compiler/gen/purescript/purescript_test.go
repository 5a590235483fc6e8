package purescript

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/butterflyc/compiler/gen"
	"github.com/syssam/butterflyc/diagram"
)

// exampleDiagram builds the canonical moderation example: two actors,
// three use cases, five associations.
func exampleDiagram(t *testing.T) *diagram.UseCaseDiagram {
	t.Helper()
	d := diagram.New()
	admin := d.InsertActor(diagram.Actor{Name: "Administrator"})
	sub := d.InsertActor(diagram.Actor{Name: "Subscriber"})
	ban := d.InsertUseCase(diagram.UseCase{Title: "Ban subscriber"})
	create := d.InsertUseCase(diagram.UseCase{Title: "Create subscriber"})
	post := d.InsertUseCase(diagram.UseCase{Title: "Post comment"})
	require.NoError(t, d.InsertAssociation(admin, ban))
	require.NoError(t, d.InsertAssociation(admin, create))
	require.NoError(t, d.InsertAssociation(admin, post))
	require.NoError(t, d.InsertAssociation(sub, create))
	require.NoError(t, d.InsertAssociation(sub, post))
	return d
}

func TestGenerateModuleHeader(t *testing.T) {
	t.Parallel()
	var b strings.Builder

	require.NoError(t, GenerateModuleHeader(&b, "ExamplePortal"))
	assert.Equal(t, "module ExamplePortal where\n", b.String())
}

func TestGenerateImports(t *testing.T) {
	t.Parallel()
	var b strings.Builder

	require.NoError(t, GenerateImports(&b))
	assert.Equal(t, `import Prelude
import Data.List as List
import Data.Set as Set
import Butterfly.Actor (Actor (..))
import Butterfly.Portal (Button (..), Portal (..))
`, b.String())
}

func TestGeneratePortalDefinitionEmpty(t *testing.T) {
	t.Parallel()
	var b strings.Builder

	require.NoError(t, GeneratePortalDefinition(&b, diagram.New(), "portal"))
	assert.Equal(t, `portal
  :: ∀ f
   . { }
  -> Portal f
portal actions =
  Portal <<< List.fromFoldable $
    [ ]
`, b.String())
}

func TestGeneratePortalDefinitionSingleUseCase(t *testing.T) {
	t.Parallel()
	d := diagram.New()
	d.InsertUseCase(diagram.UseCase{Title: "Ban subscriber"})
	var b strings.Builder

	require.NoError(t, GeneratePortalDefinition(&b, d, "portal"))
	assert.Equal(t, `portal
  :: ∀ f
   . { "Ban subscriber" :: f Unit }
  -> Portal f
portal actions =
  Portal <<< List.fromFoldable $
    [ Button "Ban subscriber"
             (Set.fromFoldable
                [ ])
             actions."Ban subscriber" ]
`, b.String())
}

func TestGeneratePortalDefinitionManyUseCases(t *testing.T) {
	t.Parallel()
	d := exampleDiagram(t)
	var b strings.Builder

	require.NoError(t, GeneratePortalDefinition(&b, d, "portal"))
	assert.Equal(t, `portal
  :: ∀ f
   . { "Ban subscriber" :: f Unit
     , "Create subscriber" :: f Unit
     , "Post comment" :: f Unit }
  -> Portal f
portal actions =
  Portal <<< List.fromFoldable $
    [ Button "Ban subscriber"
             (Set.fromFoldable
                [ Actor "Administrator" ])
             actions."Ban subscriber"
    , Button "Create subscriber"
             (Set.fromFoldable
                [ Actor "Administrator"
                , Actor "Subscriber" ])
             actions."Create subscriber"
    , Button "Post comment"
             (Set.fromFoldable
                [ Actor "Administrator"
                , Actor "Subscriber" ])
             actions."Post comment" ]
`, b.String())
}

func TestGeneratePortalDefinitionDeduplicatesNames(t *testing.T) {
	t.Parallel()
	d := diagram.New()
	op1 := d.InsertActor(diagram.Actor{Name: "Operator"})
	op2 := d.InsertActor(diagram.Actor{Name: "Operator"})
	uc := d.InsertUseCase(diagram.UseCase{Title: "Reboot"})
	require.NoError(t, d.InsertAssociation(op1, uc))
	require.NoError(t, d.InsertAssociation(op2, uc))

	var b strings.Builder
	require.NoError(t, GeneratePortalDefinition(&b, d, "portal"))
	assert.Equal(t, 1, strings.Count(b.String(), `Actor "Operator"`))
}

func TestGeneratePortalDeterministic(t *testing.T) {
	t.Parallel()
	d := exampleDiagram(t)
	cfg, err := gen.NewConfig(gen.WithModule("ExamplePortal"))
	require.NoError(t, err)

	backend := New()
	var first, second strings.Builder
	require.NoError(t, backend.GeneratePortal(&first, d, cfg))
	require.NoError(t, backend.GeneratePortal(&second, d, cfg))
	assert.Equal(t, first.String(), second.String())

	out := first.String()
	assert.True(t, strings.HasPrefix(out, "-- Code generated by butterflyc. DO NOT EDIT.\n"))
	assert.Contains(t, out, "module ExamplePortal where\n")
	assert.Contains(t, out, "import Butterfly.Portal (Button (..), Portal (..))\n")
}

func TestBackendFilename(t *testing.T) {
	t.Parallel()
	cfg, err := gen.NewConfig(gen.WithModule("ExamplePortal"))
	require.NoError(t, err)

	backend := New()
	assert.Equal(t, "purescript", backend.Name())
	assert.Equal(t, "ExamplePortal.purs", backend.Filename(cfg))
}

func TestGeneratePortalHeader(t *testing.T) {
	t.Parallel()
	cfg, err := gen.NewConfig(gen.WithModule("ExamplePortal"), gen.WithHeader("generated from portal.yaml"))
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, New().GeneratePortal(&b, diagram.New(), cfg))
	assert.Contains(t, b.String(), "-- generated from portal.yaml\n")
}

// errWriter fails every write with a fixed error.
type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWriteErrorPropagatesUnchanged(t *testing.T) {
	t.Parallel()
	sink := &errWriter{err: errors.New("sink closed")}

	err := GenerateModuleHeader(sink, "ExamplePortal")
	assert.Equal(t, sink.err, err)

	err = GenerateImports(sink)
	assert.Equal(t, sink.err, err)

	err = GeneratePortalDefinition(sink, exampleDiagram(t), "portal")
	assert.Equal(t, sink.err, err)
}
