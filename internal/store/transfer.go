package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ashwin/studytrack/internal/subject"
)

// subjectsSchema validates imported collections. The document shape is
// the export format: a JSON array of subjects with camelCase
// keys and embedded session arrays.
//
//go:embed subjects.schema.json
var subjectsSchema []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Export writes the collection to w as a single indented JSON document.
func Export(w io.Writer, subjects []subject.Subject) error {
	if subjects == nil {
		subjects = []subject.Subject{}
	}
	b, err := json.MarshalIndent(subjects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal subjects: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import reads a collection from r, validating the document against the
// embedded schema before decoding. A schema violation rejects the whole
// document; nothing is partially imported.
func Import(r io.Reader) ([]subject.Subject, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	sch, err := importSchema()
	if err != nil {
		return nil, err
	}

	// The jsonschema library validates a decoded value, not raw bytes.
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate import: %w", err)
	}

	var subjects []subject.Subject
	if err := json.Unmarshal(raw, &subjects); err != nil {
		return nil, fmt.Errorf("decode import: %w", err)
	}
	return subjects, nil
}

// importSchema compiles the embedded schema once.
func importSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(subjectsSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("subjects.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("subjects.schema.json")
	})
	return compiledSchema, compileErr
}
