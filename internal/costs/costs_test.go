package costs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCostsReport(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "costs-report.json")
	content := `[
		{"hash":"c1","procedureId":"foo()","location":{"file":"src/a.c","line":12,"column":1},"polynomial":"{\"degree\":1,\"hum\":\"5n\"}"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	items, err := Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "c1", items[0].Hash)
	assert.Equal(t, "foo()", items[0].ProcedureID)
	assert.Equal(t, "src/a.c", items[0].Location.File)

	poly, err := Decode(items[0].Polynomial)
	require.NoError(t, err)
	degree, ok := poly.Degree()
	require.True(t, ok)
	assert.Equal(t, 1, degree)
}

func TestLoadCostsReportMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "costs-report.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
