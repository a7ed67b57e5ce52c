package model

// Version is the chainplan release reported by --version.
const Version = "1.0.0"

// Link is one position in the chain: the plan that is copied and the output
// it is written to.
type Link struct {
	Index  int       `json:"index"`  // Position in the chain, starting at 0
	Input  string    `json:"input"`  // Source plan path
	Output string    `json:"output"` // Generated output path
	Next   Successor `json:"next"`   // Output named by the #chain directive
}

// Chain is the full, ordered set of links computed for one run.
type Chain struct {
	Pattern string `json:"pattern"` // The --output pattern the names derive from
	Links   []Link `json:"links"`
}

// Outputs returns the output filenames in chain order.
func (c Chain) Outputs() []string {
	outputs := make([]string, len(c.Links))
	for i, link := range c.Links {
		outputs[i] = link.Output
	}
	return outputs
}

// DistinctInputs counts the plan files the chain references, ignoring repeats.
func (c Chain) DistinctInputs() int {
	seen := make(map[string]struct{}, len(c.Links))
	for _, link := range c.Links {
		seen[link.Input] = struct{}{}
	}
	return len(seen)
}

// Terminal returns the last link of the chain.
func (c Chain) Terminal() (Link, bool) {
	if len(c.Links) == 0 {
		return Link{}, false
	}
	return c.Links[len(c.Links)-1], true
}
