package sunshade

// TagTable is a Tagger for hosts without native per-shape metadata.
// Entries are keyed by shape ID. The zero value is ready to use.
type TagTable struct {
	entries map[string]map[string]string
}

// Tag returns the value stored under key for s, or "" if unset.
func (t *TagTable) Tag(s Shape, key string) string {
	if s == nil || t.entries == nil {
		return ""
	}
	return t.entries[s.ID()][key]
}

// SetTag stores value under key for s. An empty value deletes the key.
func (t *TagTable) SetTag(s Shape, key, value string) {
	if s == nil {
		return
	}
	id := s.ID()
	if value == "" {
		if m, ok := t.entries[id]; ok {
			delete(m, key)
			if len(m) == 0 {
				delete(t.entries, id)
			}
		}
		return
	}
	if t.entries == nil {
		t.entries = make(map[string]map[string]string)
	}
	m, ok := t.entries[id]
	if !ok {
		m = make(map[string]string)
		t.entries[id] = m
	}
	m[key] = value
}

// Forget drops every tag stored for s.
func (t *TagTable) Forget(s Shape) {
	if s == nil || t.entries == nil {
		return
	}
	delete(t.entries, s.ID())
}

// Len returns the number of shapes carrying at least one tag.
func (t *TagTable) Len() int {
	return len(t.entries)
}

var _ Tagger = (*TagTable)(nil)
