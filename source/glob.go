package source

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandInputs resolves an input pattern to the list of matching files.
// Patterns support doublestar globs ("data/**/*.csv"); a plain path matches
// itself. Matches are returned in lexical order, which fixes the row
// numbering across multiple input files.
func ExpandInputs(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand input pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no input files match %q", pattern)
	}
	return matches, nil
}
