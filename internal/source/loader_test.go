package source

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peter8zero/specbuilder/internal/errors"
)

// writeTree creates files under root from a map of relative path -> content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestLoadDir_DiscoversMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Root.cs":                "// root",
		"SchemeA/Reval.cs":       "// reval",
		"SchemeA/Notes.txt":      "not a source file",
		"SchemeB/Sub/Nested.cs":  "// nested",
		"SchemeB/GmpEqualise.cs": "// gmp",
	})

	modules, err := LoadDir(root, "**/*.cs", io.Discard)
	require.NoError(t, err)
	require.Len(t, modules, 4)

	// Root-level files come first, then subdirectories in lexicographic
	// order, files before deeper levels.
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	require.Equal(t, []string{"Root", "Reval", "GmpEqualise", "Nested"}, names)
}

func TestLoadDir_SchemeFromFirstPathComponent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Root.cs":               "// root",
		"SchemeA/Reval.cs":      "// reval",
		"SchemeB/Sub/Nested.cs": "// nested",
	})

	modules, err := LoadDir(root, "**/*.cs", io.Discard)
	require.NoError(t, err)

	bySuffix := map[string]Module{}
	for _, m := range modules {
		bySuffix[m.Name] = m
	}

	require.Equal(t, "", bySuffix["Root"].Scheme)
	require.Equal(t, "SchemeA", bySuffix["Reval"].Scheme)
	require.Equal(t, "SchemeB", bySuffix["Nested"].Scheme)
}

func TestLoadDir_ModuleFields(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"SchemeA/FixedRate.cs": "public class FixedRate { }",
	})

	modules, err := LoadDir(root, "**/*.cs", io.Discard)
	require.NoError(t, err)
	require.Len(t, modules, 1)

	m := modules[0]
	require.Equal(t, "FixedRate", m.Name)
	require.Equal(t, "public class FixedRate { }", m.Code)
	// Timestamp is formatted YYYY-MM-DDTHH:MM:SS.
	require.Len(t, m.LastModified, 19)
	require.Equal(t, "T", string(m.LastModified[10]))
}

func TestLoadDir_PatternFilters(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/A.cs":    "// a",
		"vendor/B.cs": "// b",
	})

	modules, err := LoadDir(root, "src/**/*.cs", io.Discard)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	require.Equal(t, "A", modules[0].Name)
}

func TestLoadDir_Trace(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"SchemeA/Reval.cs": "// reval",
	})

	var buf strings.Builder
	_, err := LoadDir(root, "**/*.cs", &buf)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "READ SchemeA/Reval.cs (scheme=SchemeA)")
}

func TestLoadDir_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := LoadDir(file, "**/*.cs", io.Discard)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrInvalidInput))

	_, err = LoadDir(filepath.Join(t.TempDir(), "missing"), "**/*.cs", io.Discard)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestLoadExchange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	payload := `[
		{"moduleName": "Reval", "scheme": "SchemeA", "code": "public class Reval { }", "lastModified": "2025-11-15T10:30:00"},
		{"moduleName": "Empty", "scheme": "", "code": "", "lastModified": ""}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	modules, err := LoadExchange(path)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	require.Equal(t, "Reval", modules[0].Name)
	require.Equal(t, "SchemeA", modules[0].Scheme)
	require.Equal(t, "public class Reval { }", modules[0].Code)
	require.Equal(t, "2025-11-15T10:30:00", modules[0].LastModified)
}

func TestLoadExchange_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "modules.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	_, err := LoadExchange(path)
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrParse))
}

func TestLoadExchange_Missing(t *testing.T) {
	_, err := LoadExchange(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, errors.ErrNotFound))
}
