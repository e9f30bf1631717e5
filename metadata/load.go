package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a metadata file and builds the catalog. The format is chosen
// by file extension: .json for icons.json, .yml/.yaml for icons.yml.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(f, path)
	case ".yml", ".yaml":
		return DecodeYAML(f, path)
	default:
		return nil, &Error{Path: path, Err: fmt.Errorf("unsupported metadata format %q", ext)}
	}
}

// DecodeJSON builds a catalog from an icons.json document.
//
// The document is a single JSON object keyed by icon name. It is consumed
// through the streaming token decoder rather than a map so that the
// catalog keeps the key order of the file.
func DecodeJSON(r io.Reader, path string) (*Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &Error{Path: path, Err: fmt.Errorf("top-level value is not an object")}
	}

	cat := newCatalog()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("decode: %w", err)}
		}
		name, ok := tok.(string)
		if !ok {
			return nil, &Error{Path: path, Err: fmt.Errorf("object key is not a string")}
		}
		var raw rawIcon
		if err := dec.Decode(&raw); err != nil {
			return nil, &Error{Path: path, Icon: name, Err: fmt.Errorf("decode: %w", err)}
		}
		ic, err := normalize(path, name, &raw)
		if err != nil {
			return nil, err
		}
		if err := cat.add(path, ic); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}

	if err := cat.checkCodepoints(path); err != nil {
		return nil, err
	}
	return cat, nil
}

// DecodeYAML builds a catalog from an icons.yml document. Decoding goes
// through the document node so mapping order survives (a plain map target
// would not preserve it).
func DecodeYAML(r io.Reader, path string) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, &Error{Path: path, Err: fmt.Errorf("expected a single document")}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &Error{Path: path, Err: fmt.Errorf("top-level value is not a mapping")}
	}

	cat := newCatalog()
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		var name string
		if err := keyNode.Decode(&name); err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("decode key: %w", err)}
		}
		var raw rawIcon
		if err := valNode.Decode(&raw); err != nil {
			return nil, &Error{Path: path, Icon: name, Err: fmt.Errorf("decode: %w", err)}
		}
		ic, err := normalize(path, name, &raw)
		if err != nil {
			return nil, err
		}
		if err := cat.add(path, ic); err != nil {
			return nil, err
		}
	}

	if err := cat.checkCodepoints(path); err != nil {
		return nil, err
	}
	return cat, nil
}
