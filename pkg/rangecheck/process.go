package rangecheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/check"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/output"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/parser"
	"github.com/xuri/excelize/v2"
)

// Severity ranks a diagnostic message.
type Severity string

const (
	// SeverityWarning marks a non-fatal advisory.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks an informational note.
	SeverityInfo Severity = "info"
)

// Diagnostic is a non-fatal message produced by a run. The core never
// prints; the presentation layer renders these.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// Outcome is the product of one run: the annotated result grid, the
// resolved role mapping, and any non-fatal diagnostics.
type Outcome struct {
	Result      *models.Result
	Roles       models.RoleMapping
	Diagnostics []Diagnostic
}

// Run executes the pure transformation: detect roles, derive the
// alignment for the configured strategy, and assemble the result grid.
// It touches no I/O and keeps no state between invocations.
func Run(wb *models.Workbook, opts Options) (*Outcome, error) {
	opts = opts.normalized()

	roles := parser.DetectRoles(wb)
	if missing := roles.MissingRequired(); len(missing) > 0 {
		return nil, &MissingRoleError{Missing: missing}
	}

	var diags []Diagnostic
	if !roles.Resolved(models.RoleMidband) {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Message:  `sheet for "Midband" not found; it will be ignored`,
		})
	}

	sensed, _ := roles.Grid(models.RoleSensed)
	lower, _ := roles.Grid(models.RoleLowerBound)
	upper, _ := roles.Grid(models.RoleUpperBound)

	// The sensed grid's offset defines the header band under both
	// strategies; only bound resolution differs.
	sensedOffset := parser.DetectOffset(sensed, opts.HeaderRows, opts.HeaderCols)

	var align check.Alignment
	switch opts.Strategy {
	case StrategyOffset:
		align = check.OffsetAlignment{
			Sensed: sensedOffset,
			Lower:  parser.DetectOffset(lower, opts.HeaderRows, opts.HeaderCols),
			Upper:  parser.DetectOffset(upper, opts.HeaderRows, opts.HeaderCols),
		}
	case StrategyIdentifier:
		align = check.NewIdentifierAlignment(
			parser.MapIdentifiers(sensed, opts.IdentifierRow),
			parser.MapIdentifiers(lower, opts.IdentifierRow),
			parser.MapIdentifiers(upper, opts.IdentifierRow),
		)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, opts.Strategy)
	}

	result := check.Assemble(sensed, lower, upper, sensedOffset, align)

	return &Outcome{Result: result, Roles: roles, Diagnostics: diags}, nil
}

// Process loads the workbook at path, runs the check, and writes the
// annotated workbook to outPath. The output is always xlsx; a legacy
// .xls input is rebuilt sheet by sheet before the Result sheet is
// added.
func Process(path, outPath string, opts Options) (*Outcome, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return processXLSX(path, outPath, opts)
	case ".xls":
		return processXLS(path, outPath, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func processXLSX(path, outPath string, opts Options) (*Outcome, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb, err := parser.LoadWorkbook(f)
	if err != nil {
		return nil, err
	}

	outcome, err := Run(wb, opts)
	if err != nil {
		return nil, err
	}

	if err := output.WriteResult(f, outcome.Result); err != nil {
		return nil, err
	}
	if err := f.SaveAs(outPath); err != nil {
		return nil, err
	}
	return outcome, nil
}

func processXLS(path, outPath string, opts Options) (*Outcome, error) {
	wb, err := parser.LoadXLSWorkbook(path)
	if err != nil {
		return nil, err
	}

	outcome, err := Run(wb, opts)
	if err != nil {
		return nil, err
	}

	f, err := output.NewWorkbookFile(wb)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := output.WriteResult(f, outcome.Result); err != nil {
		return nil, err
	}
	if err := f.SaveAs(outPath); err != nil {
		return nil, err
	}
	return outcome, nil
}
