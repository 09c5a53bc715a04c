package rangecheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is neither .xlsx nor .xls.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrInvalidStrategy indicates an unknown alignment strategy name.
var ErrInvalidStrategy = errors.New("invalid alignment strategy")

// MissingRoleError reports required sheet roles that could not be
// resolved by detection. It is the only fatal condition in the core:
// the input is malformed and retrying cannot succeed.
type MissingRoleError struct {
	// Missing lists the unresolved required roles in detection order.
	Missing []models.Role
}

func (e *MissingRoleError) Error() string {
	names := make([]string, len(e.Missing))
	for i, role := range e.Missing {
		names[i] = role.DisplayName()
	}
	return fmt.Sprintf("required sheets missing: %s", strings.Join(names, ", "))
}
