package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/obinna/dredgeops/internal/model"
)

func TestGenerateOpenPeriodLabels(t *testing.T) {
	g := NewGenerator()

	content, err := g.Generate(model.ProjectReport{})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	from, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	to, err := file.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "start", from)
	assert.Equal(t, "now", to)
}

func TestGenerateBoundedPeriod(t *testing.T) {
	g := NewGenerator()

	report := model.ProjectReport{
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
		Summary:  model.ProjectSummary{TotalVolume: 75, TotalTrips: 5},
	}
	content, err := g.Generate(report)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer file.Close()

	from, err := file.GetCellValue("Summary", "B1")
	require.NoError(t, err)
	to, err := file.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", from)
	assert.Equal(t, "2026-01-31", to)

	volume, err := file.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "75.000", volume)
}
