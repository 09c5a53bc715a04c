package parser

import (
	"strings"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// contentScanSize bounds the top-left cell block searched for role
// keywords when sheet titles are inconclusive.
const contentScanSize = 10

// DetectRoles maps the logical roles to grids in two passes: first by
// sheet title, then by keywords embedded in the top-left cell block.
// The first match wins per role, workbook order breaks ties, and a
// resolved role is never overwritten.
func DetectRoles(wb *models.Workbook) models.RoleMapping {
	mapping := models.NewRoleMapping()

	// Title pass. A sheet claims at most one role here, the first
	// unresolved role whose keywords its title contains.
	for _, g := range wb.Grids() {
		title := strings.ToLower(g.Name())
		for _, role := range models.Roles {
			if mapping.Resolved(role) {
				continue
			}
			if containsAny(title, role.Keywords()) {
				mapping.Assign(role, g)
				break
			}
		}
	}

	// Content pass, only for roles still unresolved.
	for _, role := range models.Roles {
		if mapping.Resolved(role) {
			continue
		}
		for _, g := range wb.Grids() {
			if blockContains(g, role.Keywords()) {
				mapping.Assign(role, g)
				break
			}
		}
	}

	return mapping
}

// containsAny reports whether s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// blockContains scans the top-left 10x10 cell block for a textual cell
// containing any of the keywords.
func blockContains(g *models.Grid, keywords []string) bool {
	for r := 1; r <= contentScanSize; r++ {
		for c := 1; c <= contentScanSize; c++ {
			v := g.Value(r, c)
			if v.Kind != models.Text {
				continue
			}
			if containsAny(strings.ToLower(v.Str), keywords) {
				return true
			}
		}
	}
	return false
}
