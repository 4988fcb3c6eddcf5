package ampconv

// Result holds the output of a conversion.
type Result struct {
	// HTML is the converted document.
	HTML string

	// Actions lists every change made, grouped by pass in pass order.
	Actions []ActionTaken
}

// Converter converts HTML to AMP markup.
type Converter interface {
	// Convert parses html, runs all conversion passes over it and returns
	// the rendered result.
	Convert(html string) (*Result, error)
}
