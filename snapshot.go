package pageobject

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Snapshot records one resolution of a schema tree: what each selector
// matched and, below every match, what its children matched.
type Snapshot struct {
	Name    string  `json:"name,omitempty"`
	Mode    string  `json:"mode"`
	Pattern string  `json:"pattern"`
	Found   bool    `json:"found"`
	Matches []Match `json:"matches"`
}

// Match is one element in a Snapshot.
type Match struct {
	Tag      string      `json:"tag"`
	ID       string      `json:"id,omitempty"`
	Text     string      `json:"text"`
	Children []*Snapshot `json:"children,omitempty"`
}

// Snapshot eagerly resolves every declared child below r, down to maxDepth
// levels of schema nesting.
func (r Result) Snapshot(maxDepth int) (*Snapshot, error) {
	return snapshot("", r, 0, maxDepth)
}

func snapshot(name string, r Result, depth, maxDepth int) (*Snapshot, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("maximum depth (%d) exceeded", maxDepth)
	}

	s := &Snapshot{
		Name:    name,
		Mode:    r.Mode().String(),
		Pattern: r.Pattern(),
		Found:   r.Found(),
		Matches: make([]Match, 0, r.Len()),
	}

	for _, el := range r.elements {
		m := Match{Tag: el.TagName(), ID: el.ID(), Text: el.NormalizedText()}
		for _, childName := range el.Names() {
			cr, err := el.Child(childName)
			if err != nil {
				return nil, err
			}
			cs, err := snapshot(childName, cr, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			m.Children = append(m.Children, cs)
		}
		s.Matches = append(s.Matches, m)
	}
	return s, nil
}

// maxTextWidth bounds element text in WriteText output.
const maxTextWidth = 60

// WriteText writes the snapshot as an indented tree.
func (s *Snapshot) WriteText(w io.Writer) error {
	return s.writeText(w, 0)
}

func (s *Snapshot) writeText(w io.Writer, indent int) error {
	pad := strings.Repeat("  ", indent)

	label := s.Mode + " " + strconv.Quote(s.Pattern)
	if s.Name != "" {
		label = s.Name + ": " + label
	}
	status := fmt.Sprintf("%d match(es)", len(s.Matches))
	if s.Mode == "Single" {
		status = "found"
		if !s.Found {
			status = "not found"
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s (%s)\n", pad, label, status); err != nil {
		return err
	}

	for _, m := range s.Matches {
		tag := "<" + m.Tag
		if m.ID != "" {
			tag += " id=" + m.ID
		}
		tag += ">"
		if _, err := fmt.Fprintf(w, "%s  %s %s\n", pad, tag, strconv.Quote(truncate(m.Text, maxTextWidth))); err != nil {
			return err
		}
		for _, c := range m.Children {
			if err := c.writeText(w, indent+2); err != nil {
				return err
			}
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
