package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaFileName is the per-collection schema file. It starts with
// "_" so the loader never treats it as an entry.
const schemaFileName = "_schema.json"

// HasSchema reports whether the collection carries a schema file.
func (s *Store) HasSchema(collection string) bool {
	_, err := os.Stat(filepath.Join(s.dir, collection, schemaFileName))
	return err == nil
}

// Validate checks every entry of the collection against its
// _schema.json. A collection without a schema validates trivially.
// Violations are collected across all entries and returned as a
// single SchemaError.
func (s *Store) Validate(collection string) error {
	schemaPath := filepath.Join(s.dir, collection, schemaFileName)
	if _, err := os.Stat(schemaPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading schema for %s: %w", collection, err)
	}

	schema, err := jsonschema.Compile(schemaPath)
	if err != nil {
		return fmt.Errorf("compiling schema for %s: %w", collection, err)
	}

	items, err := s.Load(collection)
	if err != nil {
		return err
	}

	var violations []Violation
	for _, it := range items {
		slug, _ := it["slug"].(string)
		if err := schema.Validate(map[string]any(it)); err != nil {
			var ve *jsonschema.ValidationError
			if errors.As(err, &ve) {
				for _, cause := range flattenCauses(ve) {
					violations = append(violations, Violation{Slug: slug, Message: cause})
				}
			} else {
				violations = append(violations, Violation{Slug: slug, Message: err.Error()})
			}
		}
	}
	if len(violations) > 0 {
		return SchemaError{Collection: collection, Violations: violations}
	}
	return nil
}

// flattenCauses walks a validation error to its leaf causes, which
// carry the specific messages worth showing.
func flattenCauses(ve *jsonschema.ValidationError) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return []string{fmt.Sprintf("%s: %s", loc, ve.Message)}
	}
	var out []string
	for _, c := range ve.Causes {
		out = append(out, flattenCauses(c)...)
	}
	return out
}
