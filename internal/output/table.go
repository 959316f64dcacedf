package output

// Table is a pre-rendered table for commands that want full control
// over columns instead of the derived union-of-keys layout.
type Table struct {
	Headers []string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
}
