package project

import "strings"

// TagSet is an ordered tech stack without duplicates.
type TagSet struct {
	tags []string
	seen map[string]struct{}
}

func NewTagSet(initial ...string) *TagSet {
	s := &TagSet{seen: make(map[string]struct{})}
	for _, t := range initial {
		s.Commit(t)
	}
	return s
}

// Commit adds a trimmed entry. Empty entries and entries already present are
// skipped; the return value reports whether the entry was added.
func (s *TagSet) Commit(entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return false
	}
	if _, ok := s.seen[entry]; ok {
		return false
	}
	s.seen[entry] = struct{}{}
	s.tags = append(s.tags, entry)
	return true
}

func (s *TagSet) Remove(entry string) {
	if _, ok := s.seen[entry]; !ok {
		return
	}
	delete(s.seen, entry)
	for i, t := range s.tags {
		if t == entry {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return
		}
	}
}

func (s *TagSet) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// NormalizeStack splits comma separated entries and commits them in order.
func NormalizeStack(entries []string) []string {
	s := NewTagSet()
	for _, e := range entries {
		for _, part := range strings.Split(e, ",") {
			s.Commit(part)
		}
	}
	return s.Tags()
}
