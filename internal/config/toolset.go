package config

import "strings"

// ToolSet is an ordered list of tool names without duplicates.
type ToolSet struct {
	names []string
}

// NewToolSet builds a ToolSet keeping the first occurrence of each name.
// Empty names are dropped.
func NewToolSet(names ...string) ToolSet {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return ToolSet{names: out}
}

// Names returns a copy of the tool names in order.
func (t ToolSet) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of tools.
func (t ToolSet) Len() int {
	return len(t.names)
}

// Override returns args as a ToolSet, or t itself when args is empty.
func (t ToolSet) Override(args []string) ToolSet {
	if len(args) == 0 {
		return t
	}
	return NewToolSet(args...)
}

func (t ToolSet) String() string {
	return strings.Join(t.names, " ")
}
