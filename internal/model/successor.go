package model

import "encoding/json"

// Successor is the optional next output of a link. The zero value is the
// end of the chain.
type Successor struct {
	output  string
	present bool
}

// NextOutput returns a Successor pointing at output.
func NextOutput(output string) Successor {
	return Successor{output: output, present: true}
}

// EndOfChain returns the Successor of the terminal link.
func EndOfChain() Successor {
	return Successor{}
}

// Output returns the next output and whether there is one.
func (s Successor) Output() (string, bool) {
	return s.output, s.present
}

// IsTerminal reports whether the link carrying s ends the chain.
func (s Successor) IsTerminal() bool {
	return !s.present
}

func (s Successor) String() string {
	if !s.present {
		return "(end of chain)"
	}
	return s.output
}

// MarshalJSON encodes the terminal successor as null.
func (s Successor) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return json.Marshal(s.output)
}

// UnmarshalJSON accepts a string or null.
func (s *Successor) UnmarshalJSON(data []byte) error {
	var output *string
	if err := json.Unmarshal(data, &output); err != nil {
		return err
	}
	if output == nil {
		*s = EndOfChain()
		return nil
	}
	*s = NextOutput(*output)
	return nil
}
