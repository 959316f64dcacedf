package content

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

var fence = []byte("---")

// splitFrontmatter separates a leading YAML frontmatter block from the
// body. The block must start on the first line with "---" and end with
// a matching fence line. When no block is present, the whole input is
// the body.
func splitFrontmatter(data []byte) (meta, body []byte, ok bool) {
	trimmed := bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(trimmed, fence) {
		return nil, data, false
	}
	rest := trimmed[len(fence):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != '\n' {
		return nil, data, false
	}
	rest = rest[1:]

	end := bytes.Index(rest, append([]byte("\n"), fence...))
	if end < 0 {
		return nil, data, false
	}
	meta = rest[:end]
	body = rest[end+1+len(fence):]
	if i := bytes.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else {
		body = nil
	}
	return meta, body, true
}

// decodeMarkdown turns a markdown file with optional YAML frontmatter
// into a single entry. Frontmatter fields become entry fields; the
// remaining text lands under "body".
func decodeMarkdown(path string, data []byte) ([]Item, error) {
	meta, body, ok := splitFrontmatter(data)

	entry := Item{}
	if ok {
		if err := yaml.Unmarshal(meta, &entry); err != nil {
			return nil, DecodeError{Path: path, Err: err}
		}
		if entry == nil {
			entry = Item{}
		}
		normalized, err := normalizeItem(path, entry)
		if err != nil {
			return nil, err
		}
		entry = normalized
	}
	entry["body"] = string(bytes.TrimSpace(body))
	return []Item{entry}, nil
}
