package ampconv

var _ LineAssociator = (*LineAssociations)(nil)

// LineAssociations is an in-memory LineAssociator keyed by node identity.
type LineAssociations struct {
	lines map[Node]int
}

// NewLineAssociations creates an empty association table.
func NewLineAssociations() *LineAssociations {
	return &LineAssociations{lines: make(map[Node]int)}
}

// Associate records line for n. Unknown lines (<= 0) are ignored.
func (a *LineAssociations) Associate(n Node, line int) {
	if line <= 0 {
		return
	}
	a.lines[n] = line
}

// Line returns the line recorded for n.
func (a *LineAssociations) Line(n Node) (int, bool) {
	line, ok := a.lines[n]
	return line, ok
}

// Len returns the number of recorded associations.
func (a *LineAssociations) Len() int {
	return len(a.lines)
}
