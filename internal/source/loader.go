package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/peter8zero/specbuilder/internal/errors"
)

// LoadDir walks root recursively and returns one Module per file whose
// root-relative path matches the doublestar pattern. Within each directory,
// files are visited before subdirectories, both in lexicographic order, so
// discovery order is deterministic.
//
// trace receives one READ line per loaded file; pass io.Discard to silence.
func LoadDir(root, pattern string, trace io.Writer) ([]Module, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.NewInvalidInput(fmt.Sprintf("%s is not a directory (use --json for exchange input)", root))
	}

	var modules []Module
	if err := walkDir(root, root, pattern, trace, &modules); err != nil {
		return nil, errors.NewInternal(err)
	}
	return modules, nil
}

// walkDir visits dir's files, then recurses into its subdirectories.
// os.ReadDir returns entries sorted by filename.
func walkDir(root, dir, pattern string, trace io.Writer, modules *[]Module) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ok, err := doublestar.Match(pattern, rel); err != nil || !ok {
			if err != nil {
				return fmt.Errorf("bad include pattern %q: %w", pattern, err)
			}
			continue
		}

		mod, err := loadFile(path, rel)
		if err != nil {
			return err
		}
		*modules = append(*modules, mod)
		fmt.Fprintf(trace, "  READ %s (scheme=%s)\n", rel, mod.Scheme)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := walkDir(root, filepath.Join(dir, entry.Name()), pattern, trace, modules); err != nil {
			return err
		}
	}

	return nil
}

// loadFile builds a Module from one matched file. rel is the slash-separated
// path relative to the scan root.
func loadFile(path, rel string) (Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Module{}, err
	}

	scheme := ""
	if i := strings.Index(rel, "/"); i >= 0 {
		scheme = rel[:i]
	}

	lastModified := ""
	if fi, err := os.Stat(path); err == nil {
		lastModified = fi.ModTime().Format("2006-01-02T15:04:05")
	}

	base := filepath.Base(rel)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return Module{
		Name:         name,
		Scheme:       scheme,
		Code:         string(data),
		LastModified: lastModified,
	}, nil
}

// LoadExchange decodes a JSON array of module records. The result is
// interchangeable with LoadDir output for all downstream stages.
func LoadExchange(path string) ([]Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound(path)
		}
		return nil, errors.NewInternal(err)
	}

	var modules []Module
	if err := json.Unmarshal(data, &modules); err != nil {
		return nil, errors.NewParse(fmt.Sprintf("malformed exchange file %s: %v", path, err), err)
	}
	return modules, nil
}
