package visual

import (
	"fmt"

	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/pkg/core"
)

// Band heights around the pitch, in canvas units.
const (
	HeaderHeight = 64.0
	LegendHeight = 72.0
)

// Title is the one-line heading for a match, e.g.
// "Argentina vs Serbia and Montenegro, 2006".
func Title(info core.MatchInfo) string {
	title := fmt.Sprintf("%s vs %s", info.HomeTeam, info.AwayTeam)
	if info.Year != 0 {
		title = fmt.Sprintf("%s, %d", title, info.Year)
	}
	return title
}

// Header draws the match title and caption in a band of HeaderHeight.
func Header(info core.MatchInfo, p Palette) []scene.Element {
	els := []scene.Element{
		{
			Kind:   scene.KindRect,
			ID:     "header:background",
			Width:  core.CanvasWidth,
			Height: HeaderHeight,
			Style:  scene.Style{Fill: p.HeaderFill},
		},
		{
			Kind:   scene.KindText,
			ID:     "header:title",
			Origin: core.Position2D{X: core.CanvasWidth / 2, Y: 26},
			Text:   Title(info),
			Style: scene.Style{
				Fill:       p.HeaderText,
				FontSize:   16,
				FontWeight: "bold",
				TextAnchor: "middle",
			},
		},
	}
	if info.Caption != "" {
		els = append(els, scene.Element{
			Kind:   scene.KindText,
			ID:     "header:caption",
			Origin: core.Position2D{X: core.CanvasWidth / 2, Y: 47},
			Text:   info.Caption,
			Style: scene.Style{
				Fill:        p.HeaderText,
				FillOpacity: 0.8,
				FontSize:    11,
				TextAnchor:  "middle",
			},
		})
	}
	return els
}

// Legend draws one sample per layer style in a band of LegendHeight,
// two rows of three entries.
func Legend(p Palette) []scene.Element {
	const (
		colWidth = core.CanvasWidth / 3
		swatch   = 28.0
	)
	rows := [2]float64{24, 50}

	type entry struct {
		label  string
		sample func(x, y float64) scene.Element
	}
	line := func(id string, st scene.Style) func(x, y float64) scene.Element {
		return func(x, y float64) scene.Element {
			return scene.Element{
				Kind:  scene.KindLine,
				ID:    id,
				From:  core.Position2D{X: x, Y: y},
				To:    core.Position2D{X: x + swatch, Y: y},
				Style: st,
			}
		}
	}

	entries := []entry{
		{"Run without ball", line("legend:trail-off-ball", scene.Style{
			Stroke:        p.Trail,
			StrokeWidth:   p.TrailOffBallWidth,
			StrokeOpacity: p.TrailOffBallOpacity,
			DashArray:     p.TrailOffBallDash,
		})},
		{"Run with ball", line("legend:trail-on-ball", scene.Style{
			Stroke:      p.Trail,
			StrokeWidth: p.TrailOnBallWidth,
			LineCap:     "round",
		})},
		{"Ball", line("legend:ball", scene.Style{
			Stroke:      p.Ball,
			StrokeWidth: p.BallWidth,
			LineCap:     "round",
		})},
		{"Pass", line("legend:pass", scene.Style{
			Stroke:        p.Pass,
			StrokeWidth:   p.PassWidth,
			StrokeOpacity: p.PassOpacity,
		})},
		{"Touch", func(x, y float64) scene.Element {
			return scene.Element{
				Kind:   scene.KindCircle,
				ID:     "legend:touch",
				Center: core.Position2D{X: x + swatch/2, Y: y},
				Radius: p.TouchRadius,
				Style:  scene.Style{Fill: p.Pass},
			}
		}},
		{"Player", func(x, y float64) scene.Element {
			return scene.Element{
				Kind:   scene.KindMarker,
				ID:     "legend:player",
				Center: core.Position2D{X: x + swatch/2, Y: y},
				Style: scene.Style{
					Fill:        p.Player,
					Stroke:      p.PlayerOutline,
					StrokeWidth: 1,
				},
			}
		}},
	}

	els := []scene.Element{{
		Kind:   scene.KindRect,
		ID:     "legend:background",
		Width:  core.CanvasWidth,
		Height: LegendHeight,
		Style:  scene.Style{Fill: p.HeaderFill},
	}}
	for i, e := range entries {
		x := float64(i%3)*colWidth + 12
		y := rows[i/3]
		els = append(els,
			e.sample(x, y),
			scene.Element{
				Kind:   scene.KindText,
				ID:     fmt.Sprintf("legend:label:%d", i),
				Origin: core.Position2D{X: x + swatch + 8, Y: y + 4},
				Text:   e.label,
				Style:  scene.Style{Fill: p.HeaderText, FontSize: 11},
			},
		)
	}
	return els
}
