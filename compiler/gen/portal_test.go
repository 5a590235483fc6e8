package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/butterflyc/diagram"
)

func TestBuildPortalEmpty(t *testing.T) {
	t.Parallel()

	p := BuildPortal(diagram.New(), "portal")
	assert.Equal(t, "portal", p.Name)
	assert.Empty(t, p.Buttons)
}

func TestBuildPortal(t *testing.T) {
	t.Parallel()
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

	p := BuildPortal(d, "portal")
	require.Len(t, p.Buttons, 3)

	assert.Equal(t, "Ban subscriber", p.Buttons[0].Title)
	assert.Equal(t, []string{"Administrator"}, p.Buttons[0].Actors)

	assert.Equal(t, "Create subscriber", p.Buttons[1].Title)
	assert.Equal(t, []string{"Administrator", "Subscriber"}, p.Buttons[1].Actors)

	assert.Equal(t, "Post comment", p.Buttons[2].Title)
	assert.Equal(t, []string{"Administrator", "Subscriber"}, p.Buttons[2].Actors)
}

func TestBuildPortalUnassociatedUseCase(t *testing.T) {
	t.Parallel()
	d := diagram.New()
	d.InsertActor(diagram.Actor{Name: "Administrator"})
	d.InsertUseCase(diagram.UseCase{Title: "Audit log"})

	p := BuildPortal(d, "portal")
	require.Len(t, p.Buttons, 1)
	assert.Empty(t, p.Buttons[0].Actors)
}

func TestBuildPortalCollapsesEqualNames(t *testing.T) {
	t.Parallel()
	d := diagram.New()
	op1 := d.InsertActor(diagram.Actor{Name: "Operator"})
	op2 := d.InsertActor(diagram.Actor{Name: "Operator"})
	uc := d.InsertUseCase(diagram.UseCase{Title: "Reboot"})
	require.NoError(t, d.InsertAssociation(op2, uc))
	require.NoError(t, d.InsertAssociation(op1, uc))

	p := BuildPortal(d, "portal")
	require.Len(t, p.Buttons, 1)
	assert.Equal(t, []string{"Operator"}, p.Buttons[0].Actors)
}
