package source

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// DecodeJSONObject decodes a single JSON object from a reader.
func DecodeJSONObject[T any](r io.Reader) (*T, error) {
	var obj T
	if err := json.NewDecoder(r).Decode(&obj); err != nil {
		return nil, eris.Wrap(err, "json: decode object")
	}
	return &obj, nil
}

// DecodeFile decodes the document at path into T. Files ending in .yaml or
// .yml are parsed as YAML, everything else as JSON.
func DecodeFile[T any](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var obj T
		if err := yaml.NewDecoder(f).Decode(&obj); err != nil && err != io.EOF {
			return nil, eris.Wrapf(err, "yaml: decode %s", path)
		}
		return &obj, nil
	default:
		obj, err := DecodeJSONObject[T](f)
		if err != nil {
			return nil, eris.Wrapf(err, "source: %s", path)
		}
		return obj, nil
	}
}

// MarshalJSON renders v with two-space indentation, unescaped HTML characters
// and a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, eris.Wrap(err, "json: encode")
	}
	return buf.Bytes(), nil
}

// WriteJSONFile writes v to path in one step: the document is written to a
// temp file next to path and renamed over it.
func WriteJSONFile(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return eris.Wrapf(err, "source: create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return eris.Wrap(err, "source: write temp file")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "source: close temp file")
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return eris.Wrap(err, "source: chmod temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return eris.Wrapf(err, "source: rename to %s", path)
	}
	return nil
}
