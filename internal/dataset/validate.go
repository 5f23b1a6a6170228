package dataset

import (
	"errors"
	"fmt"

	"github.com/touchline/goalviz/internal/geo"
	"github.com/touchline/goalviz/pkg/core"
)

var (
	// ErrDuplicatePlayer is reported when two players share an ID
	ErrDuplicatePlayer = errors.New("duplicate player id")
	// ErrUnknownPlayer is reported when a movement or pass names a missing player
	ErrUnknownPlayer = errors.New("unknown player id")
	// ErrOutOfCanvas is reported for coordinates outside the logical canvas
	ErrOutOfCanvas = errors.New("coordinates outside canvas")
	// ErrDegeneratePath is reported for paths with fewer than two points
	ErrDegeneratePath = errors.New("path has fewer than two points")
	// ErrZeroLengthPath is reported for paths whose points all coincide
	ErrZeroLengthPath = errors.New("path has zero length")
	// ErrChainGap is reported when a pass does not start where the previous
	// one ended. Gaps are allowed; the report is informational.
	ErrChainGap = errors.New("pass chain gap")
)

// Issue is a single finding about a dataset
type Issue struct {
	Err     error
	Subject string // e.g. "pass[3]", "movement[0]", "player[cambiasso]"
	Detail  string
}

func (i Issue) Error() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s: %v", i.Subject, i.Err)
	}
	return fmt.Sprintf("%s: %v: %s", i.Subject, i.Err, i.Detail)
}

func (i Issue) Unwrap() error {
	return i.Err
}

// Validate reports problems in ds. None of them stop rendering: elements with
// dangling references or degenerate paths are simply not drawn.
func Validate(ds *core.Dataset) []Issue {
	var issues []Issue

	seen := make(map[string]bool, len(ds.Players))
	for i, p := range ds.Players {
		subject := fmt.Sprintf("player[%d]", i)
		if seen[p.ID] {
			issues = append(issues, Issue{Err: ErrDuplicatePlayer, Subject: subject, Detail: p.ID})
		}
		seen[p.ID] = true
		if !geo.PointWithinCanvas(p.Position) {
			issues = append(issues, Issue{Err: ErrOutOfCanvas, Subject: subject, Detail: p.ID})
		}
	}

	for i, m := range ds.Movements {
		subject := fmt.Sprintf("movement[%d]", i)
		if !seen[m.PlayerID] {
			issues = append(issues, Issue{Err: ErrUnknownPlayer, Subject: subject, Detail: m.PlayerID})
		}
		issues = append(issues, pathIssues(subject, m.Waypoints)...)
		if !geo.WithinCanvas(m.Waypoints) {
			issues = append(issues, Issue{Err: ErrOutOfCanvas, Subject: subject})
		}
	}

	for i, p := range ds.Passes {
		subject := fmt.Sprintf("pass[%d]", i)
		for _, id := range []string{p.From, p.To} {
			if !seen[id] {
				issues = append(issues, Issue{Err: ErrUnknownPlayer, Subject: subject, Detail: id})
			}
		}
		if i > 0 && ds.Passes[i-1].To != p.From {
			issues = append(issues, Issue{
				Err:     ErrChainGap,
				Subject: subject,
				Detail:  fmt.Sprintf("previous pass ended at %q, this one starts at %q", ds.Passes[i-1].To, p.From),
			})
		}
	}

	issues = append(issues, pathIssues("ballPath", ds.BallPath)...)
	if !geo.WithinCanvas(ds.BallPath) {
		issues = append(issues, Issue{Err: ErrOutOfCanvas, Subject: "ballPath"})
	}

	return issues
}

func pathIssues(subject string, p core.Polyline) []Issue {
	if len(p) < 2 {
		return []Issue{{Err: ErrDegeneratePath, Subject: subject}}
	}
	if geo.Length(p) == 0 {
		return []Issue{{Err: ErrZeroLengthPath, Subject: subject, Detail: fmt.Sprintf("%d points", len(p))}}
	}
	return nil
}
