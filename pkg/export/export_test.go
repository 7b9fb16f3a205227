package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Title:   "Courses",
		Headers: []string{"Course", "Name", "Credits"},
		Rows: [][]string{
			{"CMSC131", "Object-Oriented Programming I", "4"},
			{"MATH140", "Calculus I", "4"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	data, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t,
		"Course,Name,Credits\nCMSC131,Object-Oriented Programming I,4\nMATH140,Calculus I,4\n",
		string(data),
	)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	data, err := NewCSVExporter().Render(Dataset{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"only"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A,B\nonly,\n", string(data))
}

func TestPDFExporterRender(t *testing.T) {
	data, err := NewPDFExporter().Render(sampleDataset())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{Title: "Empty"})
	require.Error(t, err)
}
