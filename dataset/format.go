// Package dataset reads grouped membership records (movies and their casts)
// from files and databases, and watches dataset files for changes.
//
// File format, one record per line:
//
//	M: Apollo 13
//	Kevin Bacon
//	Tom Hanks
//
//	M: Sleepless in Seattle
//	Tom Hanks
//	Meg Ryan
//
// "M:" starts a group whose key is the rest of the line; every following
// non-blank line is a member of that group. Blank lines are ignored.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/costar/collab"
)

// groupPrefix marks a line that starts a new group.
const groupPrefix = "M:"

// maxLineBytes bounds a single dataset line.
const maxLineBytes = 1 << 20

// Sentinel errors for dataset parsing.
var (
	// ErrMalformedRecord indicates a line that cannot be placed in any group.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrDuplicateGroup indicates the same group key was declared twice.
	ErrDuplicateGroup = errors.New("dataset: duplicate group")
)

// Parse reads groups in file order. Malformed input is rejected as a whole:
// no partial result is returned.
func Parse(r io.Reader) ([]collab.Group, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		groups []collab.Group
		seen   = make(map[string]int)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		if key, ok := strings.CutPrefix(line, groupPrefix); ok {
			key = strings.TrimSpace(key)
			if key == "" {
				return nil, fmt.Errorf("%w: line %d: group header without a key", ErrMalformedRecord, lineNo)
			}
			if first, dup := seen[key]; dup {
				return nil, fmt.Errorf("%w: line %d: %q already declared on line %d", ErrDuplicateGroup, lineNo, key, first)
			}
			seen[key] = lineNo
			groups = append(groups, collab.Group{Key: key})

			continue
		}

		if len(groups) == 0 {
			return nil, fmt.Errorf("%w: line %d: member %q before any %q header", ErrMalformedRecord, lineNo, line, groupPrefix)
		}
		cur := &groups[len(groups)-1]
		cur.Members = append(cur.Members, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read line %d: %w", lineNo+1, err)
	}

	return groups, nil
}

// Write renders groups in the format Parse reads, separating groups by a blank line.
func Write(w io.Writer, groups []collab.Group) error {
	bw := bufio.NewWriter(w)
	for i, grp := range groups {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "%s %s\n", groupPrefix, grp.Key); err != nil {
			return err
		}
		for _, m := range grp.Members {
			if _, err := fmt.Fprintln(bw, m); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
