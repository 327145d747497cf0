/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Object is a schemaless document metadata payload. It is forwarded to the
// ingestion API verbatim; no field validation happens client-side.
type Object map[string]any

// Load produces a metadata Object from the -m argument. Arguments ending in
// .json are treated as file paths; anything else is parsed as an inline JSON
// string. Returns a *MetadataError on unreadable files or invalid JSON.
func Load(arg string) (Object, error) {
	trimmed := strings.TrimSpace(arg)
	if strings.HasSuffix(strings.ToLower(trimmed), ".json") {
		return loadFile(trimmed)
	}
	return decode([]byte(arg), "inline")
}

// Default is the metadata used when none is supplied: a minimal object
// titling the document after its file name.
func Default(documentPath string) Object {
	return Object{"title": filepath.Base(documentPath)}
}

// Encode renders the object as compact JSON for the multipart metadata field.
func (o Object) Encode() ([]byte, error) {
	if o == nil {
		o = Object{}
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, &MetadataError{Op: "encode", Err: err}
	}
	return data, nil
}

func loadFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MetadataError{Op: "load", Source: path, Err: err}
	}
	return decode(data, path)
}

func decode(data []byte, source string) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &MetadataError{Op: "parse", Source: source, Err: err}
	}
	return obj, nil
}
