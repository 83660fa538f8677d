// Copyright (c) 2025 batchtsocmd
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
)

// PresentError formats an error for user display.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return err.Error()
	}
	return fmt.Sprintf("%s: %s", context, err.Error())
}
