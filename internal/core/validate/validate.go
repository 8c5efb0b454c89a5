// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// TodoText validates task text is non-empty after trimming whitespace.
func TodoText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// TodoTextField returns a criterio validator for task text.
func TodoTextField(field, text string) error {
	return criterio.Run(field, text, TodoText)
}
