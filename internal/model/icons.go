package model

// Centralized icons for the preview and report
// Using simple single-width characters for consistent terminal rendering
const (
	IconLink     = "→" // Right arrow (link to next output)
	IconTerminal = "■" // End of chain
	IconRepeat   = "≈" // Input already used earlier in the chain
	IconWritten  = "✓" // Output written
	IconFailed   = "✗" // Write failed
)
