package journal

import (
	"fmt"
	"strings"
)

// PathSeparator separates the segments of a hierarchical account name,
// e.g. "assets:bank:checking".
const PathSeparator = ":"

// Account represents a row in the chart of accounts.
type Account struct {
	ID       int64
	Name     string
	Type     string
	ParentID *int64
}

// SplitAccountPath validates an account name and returns its path segments.
// Names are case-sensitive; every segment must be non-empty.
func SplitAccountPath(name string) ([]string, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: account name is empty", ErrInvalidLineItem)
	}

	segments := strings.Split(name, PathSeparator)
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: account name %q has an empty segment", ErrInvalidLineItem, name)
		}
	}

	return segments, nil
}

// AccountAncestry returns every path prefix of an account name from the root
// down, including the name itself. For "assets:bank:checking" it returns
// ["assets", "assets:bank", "assets:bank:checking"].
func AccountAncestry(name string) ([]string, error) {
	segments, err := SplitAccountPath(name)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(segments))
	for i := range segments {
		paths = append(paths, strings.Join(segments[:i+1], PathSeparator))
	}

	return paths, nil
}

// AccountRoot returns the first segment of an account name.
func AccountRoot(name string) string {
	if i := strings.Index(name, PathSeparator); i >= 0 {
		return name[:i]
	}
	return name
}
