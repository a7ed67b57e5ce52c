package model

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DirectivePrefix starts the line that tells the scheduler which plan to run next.
const DirectivePrefix = "#chain "

// ReadPlan reads a plan file and returns its normalized text.
func ReadPlan(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", filePath, err)
	}
	return NormalizePlan(string(data)), nil
}

// NormalizePlan terminates every line of a plan with "\n" and appends one
// blank line, so the directive written after it always starts a fresh line.
func NormalizePlan(content string) string {
	lines := SplitLines(content)
	lines = append(lines, "")

	var b strings.Builder
	b.Grow(len(content) + 2)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// SplitLines splits text at "\n", "\r\n" and "\r". Terminators are dropped
// and a trailing terminator does not produce an empty last line.
func SplitLines(content string) []string {
	var lines []string
	for len(content) > 0 {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i])
		// Handle \r\n as a single terminator
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		content = content[i+1:]
	}
	return lines
}

// Directive returns the "#chain" line for next, or "" for the end of the chain.
func Directive(next Successor) string {
	output, ok := next.Output()
	if !ok {
		return ""
	}
	return DirectivePrefix + output + "\n"
}

// Render returns the exact bytes an output file holds: the normalized plan
// text followed by the directive, if any.
func Render(planText string, next Successor) string {
	return planText + Directive(next)
}
