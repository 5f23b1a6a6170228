// Package visual composes the goal diagram: the pitch, movement trails, ball
// trajectory, passes, touches and players, each in its own layer.
package visual

import (
	"fmt"
	"log/slog"

	"github.com/touchline/goalviz/internal/geo"
	"github.com/touchline/goalviz/internal/pitch"
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/pkg/core"
)

// Options controls a composition
type Options struct {
	Palette Palette
	// Logger receives warnings for skipped elements. Nil means slog.Default().
	Logger *slog.Logger
}

// Report lists what was left out of a composition
type Report struct {
	// SkippedMovements holds indexes of movements naming an unknown player
	SkippedMovements []int
	// SkippedPasses holds indexes of passes naming an unknown player
	SkippedPasses []int
	// Degenerate counts paths with fewer than two points (nothing to draw)
	Degenerate int
}

// Skipped returns the total number of elements dropped for dangling references.
func (r Report) Skipped() int {
	return len(r.SkippedMovements) + len(r.SkippedPasses)
}

// Compose builds the z-ordered scene for ds on the logical canvas.
// Elements with dangling player references are skipped; the rest of the
// scene is unaffected. A nil ds draws the bare pitch.
func Compose(ds *core.Dataset, opts Options) (scene.Scene, Report) {
	if ds == nil {
		ds = &core.Dataset{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := opts.Palette
	players := ds.PlayerIndex()

	var report Report
	b := scene.NewBuilder(core.CanvasWidth, core.CanvasHeight)

	// Pitch
	b.Add(scene.Element{
		Kind:   scene.KindRect,
		Layer:  scene.LayerPitch,
		ID:     "pitch:grass",
		Origin: core.Position2D{},
		Width:  core.CanvasWidth,
		Height: core.CanvasHeight,
		Style:  scene.Style{Fill: p.PitchFill},
	})
	b.Add(pitch.Elements(p.PitchLine)...)

	// Movement trails. The layer depends on WithBall, so off-ball trails
	// always end up beneath on-ball ones.
	for i, m := range ds.Movements {
		if _, ok := players[m.PlayerID]; !ok {
			report.SkippedMovements = append(report.SkippedMovements, i)
			logger.Warn("Skipping movement with unknown player", "index", i, "player", m.PlayerID)
			continue
		}
		curve := geo.TrailCurve(m.Waypoints)
		if curve.IsEmpty() {
			report.Degenerate++
			logger.Debug("Movement has nothing to draw", "index", i, "player", m.PlayerID)
			continue
		}
		b.Add(trail(i, m, curve, p))
	}

	// Ball
	if ball := geo.BallCurve(ds.BallPath); !ball.IsEmpty() {
		b.Add(scene.Element{
			Kind:  scene.KindPath,
			Layer: scene.LayerBallPath,
			ID:    "ball",
			Path:  ball.PathData(),
			Style: scene.Style{
				Stroke:      p.Ball,
				StrokeWidth: p.BallWidth,
				Fill:        "none",
				LineCap:     "round",
			},
		})
	} else {
		report.Degenerate++
		logger.Debug("Ball path has nothing to draw", "points", len(ds.BallPath))
	}

	// Passes and touches
	for i, pass := range ds.Passes {
		from, okFrom := players[pass.From]
		to, okTo := players[pass.To]
		if !okFrom || !okTo {
			report.SkippedPasses = append(report.SkippedPasses, i)
			logger.Warn("Skipping pass with unknown player", "index", i, "from", pass.From, "to", pass.To)
			continue
		}
		b.Add(
			scene.Element{
				Kind:  scene.KindLine,
				Layer: scene.LayerPasses,
				ID:    fmt.Sprintf("pass:%d", i),
				From:  from.Position,
				To:    to.Position,
				Style: scene.Style{
					Stroke:        p.Pass,
					StrokeWidth:   p.PassWidth,
					StrokeOpacity: p.PassOpacity,
				},
			},
			scene.Element{
				Kind:   scene.KindCircle,
				Layer:  scene.LayerTouches,
				ID:     fmt.Sprintf("touch:%d", i),
				Center: from.Position,
				Radius: p.TouchRadius,
				Style:  scene.Style{Fill: p.Pass},
			},
		)
	}

	// Players
	for _, pl := range ds.Players {
		b.Add(scene.Element{
			Kind:   scene.KindMarker,
			Layer:  scene.LayerPlayers,
			ID:     "player:" + pl.ID,
			Center: pl.Position,
			Text:   pl.Name,
			Style: scene.Style{
				Fill:        p.Player,
				Stroke:      p.PlayerOutline,
				StrokeWidth: 1,
				FontSize:    p.LabelSize,
				TextAnchor:  "middle",
				LabelFill:   p.Label,
			},
		})
	}

	s := b.Scene()
	recordComposition(s, report)
	return s, report
}

func trail(i int, m core.Movement, curve geo.Curve, p Palette) scene.Element {
	el := scene.Element{
		Kind: scene.KindPath,
		ID:   fmt.Sprintf("trail:%d:%s", i, m.PlayerID),
		Path: curve.PathData(),
	}
	if m.WithBall {
		el.Layer = scene.LayerTrailsOnBall
		el.Style = scene.Style{
			Stroke:      p.Trail,
			StrokeWidth: p.TrailOnBallWidth,
			Fill:        "none",
			LineCap:     "round",
		}
		return el
	}
	el.Layer = scene.LayerTrailsOffBall
	el.Style = scene.Style{
		Stroke:        p.Trail,
		StrokeWidth:   p.TrailOffBallWidth,
		StrokeOpacity: p.TrailOffBallOpacity,
		DashArray:     p.TrailOffBallDash,
		Fill:          "none",
		LineCap:       "round",
	}
	return el
}
