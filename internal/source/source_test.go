package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpi.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	rec := &recorder{}
	require.NoError(t, ReadTable(context.Background(), path, Options{}, rec))
	assert.Equal(t, []string{"a", "b"}, rec.header)
	assert.Equal(t, [][]string{{"1", "2"}}, rec.rows)
}

func TestReadTable_XLSX(t *testing.T) {
	path := createTestXLSX(t, map[string][][]string{"Data": {{"a"}, {"1"}}})

	rec := &recorder{}
	require.NoError(t, ReadTable(context.Background(), path, Options{Sheet: "Data"}, rec))
	assert.Equal(t, []string{"a"}, rec.header)
	assert.Equal(t, [][]string{{"1"}}, rec.rows)
}

func TestReadTable_ZippedCSV(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{"CPI.csv": "a,b\n1,2\n"})
	tempDir := filepath.Join(t.TempDir(), "work")

	rec := &recorder{}
	require.NoError(t, ReadTable(context.Background(), zipPath, Options{TempDir: tempDir}, rec))
	assert.Equal(t, []string{"a", "b"}, rec.header)
	assert.Equal(t, [][]string{{"1", "2"}}, rec.rows)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "extract dir should be cleaned up")
}

func TestReadTable_NestedZip(t *testing.T) {
	zipPath := createTestZIP(t, map[string]string{"inner.zip": "PK"})

	err := ReadTable(context.Background(), zipPath, Options{TempDir: t.TempDir()}, &recorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested archive")
}

func TestReadTable_Missing(t *testing.T) {
	err := ReadTable(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), Options{}, &recorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source: open")
}
