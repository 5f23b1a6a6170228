package visual

import (
	"context"
	"sync"

	"github.com/touchline/goalviz/internal/scene"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/touchline/goalviz/internal/visual"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	drawn   metric.Int64Counter
	skipped metric.Int64Counter
}

var (
	instOnce sync.Once
	inst     *instruments
)

// getInstruments creates the counters once.
func getInstruments() *instruments {
	instOnce.Do(func() {
		inst = newInstruments(meter())
	})
	return inst
}

// newInstruments reports instrument errors to the otel error handler and
// leaves that counter nil, which is then not recorded.
func newInstruments(m metric.Meter) *instruments {
	i := &instruments{}
	var err error
	if i.drawn, err = m.Int64Counter("goalviz.scene.elements",
		metric.WithDescription("Draw commands produced per layer")); err != nil {
		otel.Handle(err)
		i.drawn = nil
	}
	if i.skipped, err = m.Int64Counter("goalviz.scene.skipped",
		metric.WithDescription("Elements skipped for dangling player references")); err != nil {
		otel.Handle(err)
		i.skipped = nil
	}
	return i
}

func recordComposition(s scene.Scene, r Report) {
	i := getInstruments()
	ctx := context.Background()

	if i.drawn != nil {
		for _, l := range scene.Layers() {
			n := len(s.Layer(l))
			if n == 0 {
				continue
			}
			i.drawn.Add(ctx, int64(n), metric.WithAttributes(attribute.String("layer", l.String())))
		}
	}
	if i.skipped != nil {
		if n := len(r.SkippedMovements); n > 0 {
			i.skipped.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kind", "movement")))
		}
		if n := len(r.SkippedPasses); n > 0 {
			i.skipped.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kind", "pass")))
		}
	}
}
