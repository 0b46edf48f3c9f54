package items

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Match is an item selected by a glob pattern, with its current position.
type Match struct {
	Index int
	Text  string
}

// Match returns the items matching the glob pattern, in list order.
// An empty pattern matches every item.
func (s *Store) Match(pattern string) ([]Match, error) {
	items := s.Items()

	if pattern == "" {
		matches := make([]Match, len(items))
		for i, text := range items {
			matches[i] = Match{Index: i, Text: text}
		}
		return matches, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern '%s': %w", pattern, err)
	}

	var matches []Match
	for i, text := range items {
		if g.Match(text) {
			matches = append(matches, Match{Index: i, Text: text})
		}
	}
	return matches, nil
}
