// Package report renders an optional QA summary of a run as a PDF
// with an embedded verdict chart.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// Excursion is one out-of-range cell, kept for the ranked table.
type Excursion struct {
	Row   int
	Col   int
	Kind  models.VerdictKind
	Delta float64
}

// Summary aggregates verdict counts and excursion statistics for one
// run.
type Summary struct {
	Input        string
	GeneratedAt  time.Time
	LowCount     int
	OkCount      int
	HighCount    int
	Unclassified int
	// Excursions holds every Low/High cell, ranked by absolute delta
	// descending.
	Excursions []Excursion
	// MeanAbsDelta is the mean absolute excursion (0 when none).
	MeanAbsDelta float64
	// MaxAbsDelta is the largest absolute excursion (0 when none).
	MaxAbsDelta float64
}

// Summarize walks a result grid and collects verdict counts and
// excursion statistics.
func Summarize(input string, result *models.Result) *Summary {
	s := &Summary{Input: input, GeneratedAt: time.Now()}

	for r := result.MinRow(); r <= result.MaxRow(); r++ {
		for c := result.MinCol(); c <= result.MaxCol(); c++ {
			cell, ok := result.Cell(r, c)
			if !ok {
				continue
			}
			switch cell.Verdict.Kind {
			case models.VerdictLow:
				s.LowCount++
				s.Excursions = append(s.Excursions, Excursion{Row: r, Col: c, Kind: models.VerdictLow, Delta: cell.Verdict.Delta})
			case models.VerdictHigh:
				s.HighCount++
				s.Excursions = append(s.Excursions, Excursion{Row: r, Col: c, Kind: models.VerdictHigh, Delta: cell.Verdict.Delta})
			case models.VerdictOk:
				s.OkCount++
			case models.VerdictUnclassified:
				s.Unclassified++
			}
		}
	}

	sort.Slice(s.Excursions, func(i, j int) bool {
		return math.Abs(s.Excursions[i].Delta) > math.Abs(s.Excursions[j].Delta)
	})

	if len(s.Excursions) > 0 {
		sum := 0.0
		for _, e := range s.Excursions {
			abs := math.Abs(e.Delta)
			sum += abs
			if abs > s.MaxAbsDelta {
				s.MaxAbsDelta = abs
			}
		}
		s.MeanAbsDelta = sum / float64(len(s.Excursions))
	}

	return s
}
