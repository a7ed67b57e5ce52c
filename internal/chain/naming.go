package chain

import (
	"fmt"
	"os"

	"chainplan/internal/model"
)

// OutputNames derives n output filenames from pattern by inserting a
// zero-padded index before the extension: "plan.txt" gives plan_0000.txt,
// plan_0001.txt, ...
func OutputNames(pattern string, n int) []string {
	if n <= 0 {
		return []string{}
	}
	root, ext := SplitExt(pattern)
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s_%04d%s", root, i, ext)
	}
	return names
}

// SplitExt splits pattern into root and extension at the last dot of its
// final path segment. Leading dots of that segment do not start an
// extension, so ".plan" and "dir.d/plan" have none.
func SplitExt(pattern string) (root, ext string) {
	sep := -1
	for i := len(pattern) - 1; i >= 0; i-- {
		if os.IsPathSeparator(pattern[i]) {
			sep = i
			break
		}
	}

	dot := -1
	for i := len(pattern) - 1; i > sep; i-- {
		if pattern[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		return pattern, ""
	}

	for i := sep + 1; i < dot; i++ {
		if pattern[i] != '.' {
			return pattern[:dot], pattern[dot:]
		}
	}
	return pattern, ""
}

// successors pairs every output with the one after it. The last output has
// no successor and ends the chain.
func successors(outputs []string) []model.Successor {
	next := make([]model.Successor, len(outputs))
	for i := range outputs {
		if i+1 < len(outputs) {
			next[i] = model.NextOutput(outputs[i+1])
		} else {
			next[i] = model.EndOfChain()
		}
	}
	return next
}
