package chain

import (
	"fmt"
	"io"
	"os"

	apperrors "chainplan/internal/errors"
	"chainplan/internal/model"
)

const outputMode = 0o644

// WritePlan creates or truncates output and writes planText to it, followed by
// a "#chain" directive when next names a successor. Outputs already written
// by earlier calls are left alone if this one fails.
func WritePlan(planText, output string, next model.Successor) (err error) {
	file, err := os.OpenFile(output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, outputMode)
	if err != nil {
		return writeFailure(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = writeFailure(closeErr)
		}
	}()

	if _, err := io.WriteString(file, planText); err != nil {
		return writeFailure(err)
	}
	if directive := model.Directive(next); directive != "" {
		if _, err := io.WriteString(file, directive); err != nil {
			return writeFailure(err)
		}
	}
	return nil
}

func writeFailure(err error) error {
	return apperrors.Wrap(
		fmt.Errorf("write plan: %w", err),
		apperrors.CategoryIOFailure,
		"plan_write_failed",
		"check that the output directory exists and is writable",
	)
}
