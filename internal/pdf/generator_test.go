package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obinna/dredgeops/internal/model"
)

func TestOrOpen(t *testing.T) {
	assert.Equal(t, "start", orOpen("", "start"))
	assert.Equal(t, "now", orOpen("  ", "now"))
	assert.Equal(t, "2026-01-01", orOpen("2026-01-01", "start"))
}

func TestGenerateOpenPeriodStatement(t *testing.T) {
	g := NewGenerator()

	content, err := g.Generate(model.EntityStatement{
		Kind: model.EntityKindDredger,
		Code: "DRG-01",
		Name: "Delta",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, content)
}
