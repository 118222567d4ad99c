package skills

import "strings"

// Set holds distinct skills in vocabulary order.
type Set struct {
	items []string
}

// NewSet builds a set from names, dropping blanks and case-insensitive repeats.
func NewSet(names ...string) Set {
	seen := make(map[string]struct{}, len(names))
	items := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, name)
	}
	return Set{items: items}
}

func (s Set) Len() int {
	return len(s.items)
}

func (s Set) Empty() bool {
	return len(s.items) == 0
}

// Slice returns a copy of the skills.
func (s Set) Slice() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s Set) Contains(name string) bool {
	for _, item := range s.items {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same skills regardless of order.
func (s Set) Equal(other Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, item := range s.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}
