package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// identifierPattern matches a sensor identifier token: two letters
// followed by one or more digits (e.g. "TS04").
var identifierPattern = regexp.MustCompile(`[A-Za-z]{2}[0-9]+`)

// MapIdentifiers builds the identifier-to-column map for a grid by
// reading the cell at headerRow in every occupied column. The first
// token found in a cell is taken, and the first column to claim a
// token keeps it. Tokens are upper-cased so the join across sheets is
// case-insensitive.
func MapIdentifiers(g *models.Grid, headerRow int) models.IdentifierMap {
	m := make(models.IdentifierMap)
	for c := g.MinCol(); c <= g.MaxCol(); c++ {
		v := g.Value(headerRow, c)
		if v.Kind != models.Text {
			continue
		}
		token := identifierPattern.FindString(v.Str)
		if token == "" {
			continue
		}
		token = strings.ToUpper(token)
		if _, claimed := m[token]; !claimed {
			m[token] = c
		}
	}
	return m
}

// ExtractIdentifier returns the upper-cased identifier token embedded
// in a header cell value, or "" when the cell holds none.
func ExtractIdentifier(v models.Value) string {
	if v.Kind != models.Text {
		return ""
	}
	return strings.ToUpper(identifierPattern.FindString(v.Str))
}
