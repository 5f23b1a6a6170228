package visual

import (
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/pkg/core"
)

// Doc is a complete diagram: header band, pitch scene, legend band, stacked
// top to bottom. Header and legend elements use band-local coordinates.
type Doc struct {
	Title  string
	Width  float64
	Height float64

	Header []scene.Element
	Pitch  scene.Scene
	Legend []scene.Element

	PitchOffset  float64 // Y where the pitch band starts
	LegendOffset float64 // Y where the legend band starts
}

// Document composes the full diagram for ds. A nil ds is drawn as an empty
// match.
func Document(ds *core.Dataset, opts Options) (Doc, Report) {
	if ds == nil {
		ds = &core.Dataset{}
	}
	s, report := Compose(ds, opts)
	return Doc{
		Title:        Title(ds.Match),
		Width:        core.CanvasWidth,
		Height:       HeaderHeight + core.CanvasHeight + LegendHeight,
		Header:       Header(ds.Match, opts.Palette),
		Pitch:        s,
		Legend:       Legend(opts.Palette),
		PitchOffset:  HeaderHeight,
		LegendOffset: HeaderHeight + core.CanvasHeight,
	}, report
}
