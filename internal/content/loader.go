// Package content loads collection entries from a content directory.
//
// The directory holds one subdirectory per collection; entry files are
// JSON, YAML, or markdown with YAML frontmatter. A Store is an
// explicit handle created once at startup and passed to consumers;
// there is no package-level cache.
package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one decoded entry: an open-ended field mapping. Values
// follow JSON conventions (numbers are float64, nested objects are
// map[string]any) regardless of the source format.
type Item = map[string]any

type decodeFunc func(path string, data []byte) ([]Item, error)

// decoders is the registration table mapping file extensions to entry
// decoders. Dispatch is by this table only; unknown extensions are
// skipped during loading.
var decoders = map[string]decodeFunc{
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".md":   decodeMarkdown,
}

// Store reads collections from a content directory.
type Store struct {
	dir string
}

// NewStore opens the content directory at dir.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory: %s is not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the content directory path.
func (s *Store) Dir() string { return s.dir }

// Collections lists the collection names, sorted.
func (s *Store) Collections() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || strings.HasPrefix(e.Name(), "_") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Load reads every entry of a collection. Entries are returned in
// path order. Files and directories whose name starts with "_" or "."
// are skipped, as are files with an unregistered extension. A file
// that matches the table but fails to decode is an error, not a skip.
//
// Entries get a "slug" defaulted from their path relative to the
// collection directory (extension stripped) and a "collection" field
// when they do not carry their own.
func (s *Store) Load(collection string) ([]Item, error) {
	root := filepath.Join(s.dir, collection)
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, NotFoundError{Kind: "collection", Name: collection}
	}

	var items []Item
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		decode, ok := decoders[strings.ToLower(filepath.Ext(name))]
		if !ok {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		decoded, err := decode(path, data)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		defaultSlug := pathSlug(rel)
		for i, it := range decoded {
			if _, ok := it["slug"]; !ok {
				slug := defaultSlug
				if len(decoded) > 1 {
					slug = fmt.Sprintf("%s-%d", defaultSlug, i+1)
				}
				it["slug"] = slug
			}
			if _, ok := it["collection"]; !ok {
				it["collection"] = collection
			}
			items = append(items, it)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns the entry of a collection whose slug matches (case
// insensitive, surrounding slashes ignored).
func (s *Store) Get(collection, slug string) (Item, error) {
	items, err := s.Load(collection)
	if err != nil {
		return nil, err
	}
	want := canonicalSlug(slug)
	for _, it := range items {
		if got, ok := it["slug"].(string); ok && canonicalSlug(got) == want {
			return it, nil
		}
	}
	return nil, NotFoundError{Kind: "entry", Name: collection + "/" + slug}
}

func canonicalSlug(s string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(s), "/"))
}

// pathSlug converts a relative entry path to a slug: extension
// stripped, separators normalized to "/".
func pathSlug(rel string) string {
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.ToSlash(rel)
}

// decodeJSON accepts a single object or an array of objects.
func decodeJSON(path string, data []byte) ([]Item, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var list []Item
		if err := json.Unmarshal(data, &list); err != nil {
			return nil, DecodeError{Path: path, Err: err}
		}
		return list, nil
	}
	var entry Item
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	return []Item{entry}, nil
}

// decodeYAML accepts a single mapping or a sequence of mappings, then
// normalizes values to JSON conventions so the query and validation
// layers see uniform types.
func decodeYAML(path string, data []byte) ([]Item, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		items := make([]Item, 0, len(v))
		for _, e := range v {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, DecodeError{Path: path, Err: fmt.Errorf("sequence element is not a mapping")}
			}
			it, err := normalizeItem(path, m)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return items, nil
	case map[string]any:
		it, err := normalizeItem(path, v)
		if err != nil {
			return nil, err
		}
		return []Item{it}, nil
	default:
		return nil, DecodeError{Path: path, Err: fmt.Errorf("document is not a mapping")}
	}
}

// normalizeItem round-trips a decoded mapping through JSON so numbers,
// timestamps, and nested containers use the same representation as
// entries loaded from .json files.
func normalizeItem(path string, m map[string]any) (Item, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	var out Item
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, DecodeError{Path: path, Err: err}
	}
	return out, nil
}
