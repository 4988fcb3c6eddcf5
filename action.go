package ampconv

// ActionKind classifies a change made to a document.
type ActionKind string

// ActionKind constants.
const (
	EmbedConverted ActionKind = "embed_converted"
)

// Description returns the human-readable sentence fragment for the kind.
func (k ActionKind) Description() string {
	switch k {
	case EmbedConverted:
		return "was converted to the amp-twitter tag"
	default:
		return string(k)
	}
}

// ActionTaken records one change a pass made to a document.
type ActionTaken struct {
	// Subject describes the markup that was changed.
	Subject string `json:"subject"`

	Kind ActionKind `json:"kind"`

	// Line is the 1-based source line of the original markup, 0 if unknown.
	Line int `json:"line"`

	// Context is a short excerpt of the original markup.
	Context string `json:"context"`
}

// Pass is a single document transformation step.
type Pass interface {
	// Name identifies the pass in logs.
	Name() string

	// Run rewrites doc in place and returns the actions taken in the order
	// they were performed. Replacement nodes are registered with lines.
	Run(doc Document, lines LineAssociator) ([]ActionTaken, error)
}
