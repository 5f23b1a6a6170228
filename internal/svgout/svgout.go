// Package svgout writes composed diagrams as SVG documents.
package svgout

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/touchline/goalviz/internal/geo"
	"github.com/touchline/goalviz/internal/scene"
	"github.com/touchline/goalviz/internal/visual"
)

// maxDecimals bounds the fractional digits written for shape coordinates.
const maxDecimals = 6

// Player glyph: a capsule with a disc at each end, label underneath.
const (
	glyphWidth   = 16
	glyphHeight  = 6
	glyphEndR    = 4
	labelOffsetY = 17
)

// errWriter keeps the first write error; svgo does not report errors itself.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Encode writes doc as an SVG document. width is the presentation width in
// pixels; the height follows from the document's aspect ratio. A width of 0
// or less uses the logical width.
func Encode(w io.Writer, doc visual.Doc, width int) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("invalid document size %vx%v", doc.Width, doc.Height)
	}
	if width <= 0 {
		width = int(math.Round(doc.Width))
	}
	height := math.Round(float64(width) * doc.Height / doc.Width)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = decimals(doc.Width, doc.Height)
	canvas.Startview(float64(width), height, 0, 0, doc.Width, doc.Height)
	canvas.Title(doc.Title)

	canvas.Gid("header")
	for _, el := range doc.Header {
		drawElement(canvas, el)
	}
	canvas.Gend()

	canvas.Decimals = decimals(doc.PitchOffset)
	canvas.Translate(0, doc.PitchOffset)
	drawScene(canvas, doc.Pitch)
	canvas.Gend()

	canvas.Decimals = decimals(doc.LegendOffset)
	canvas.Translate(0, doc.LegendOffset)
	canvas.Gid("legend")
	for _, el := range doc.Legend {
		drawElement(canvas, el)
	}
	canvas.Gend()
	canvas.Gend()

	canvas.End()
	return ew.err
}

// EncodeScene writes a bare scene, without header or legend.
func EncodeScene(w io.Writer, s scene.Scene) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Decimals = decimals(s.Width, s.Height)
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	drawScene(canvas, s)
	canvas.End()
	return ew.err
}

// drawScene emits one group per non-empty layer, in z-order.
func drawScene(canvas *svg.SVG, s scene.Scene) {
	for _, l := range scene.Layers() {
		els := s.Layer(l)
		if len(els) == 0 {
			continue
		}
		canvas.Gid(groupID(l.String()))
		for _, el := range els {
			drawElement(canvas, el)
		}
		canvas.Gend()
	}
}

func drawElement(canvas *svg.SVG, el scene.Element) {
	attrs := attributes(el)
	switch el.Kind {
	case scene.KindPath:
		canvas.Path(el.Path, attrs...)
	case scene.KindLine:
		// path data keeps fractional coordinates
		d := fmt.Sprintf("M %s %s L %s %s",
			geo.FormatFloat(el.From.X), geo.FormatFloat(el.From.Y),
			geo.FormatFloat(el.To.X), geo.FormatFloat(el.To.Y))
		canvas.Path(d, attrs...)
	case scene.KindCircle:
		canvas.Decimals = decimals(el.Center.X, el.Center.Y, el.Radius)
		canvas.Circle(el.Center.X, el.Center.Y, el.Radius, attrs...)
	case scene.KindRect:
		canvas.Decimals = decimals(el.Origin.X, el.Origin.Y, el.Width, el.Height, el.Radius)
		if el.Radius > 0 {
			canvas.Roundrect(el.Origin.X, el.Origin.Y, el.Width, el.Height, el.Radius, el.Radius, attrs...)
			return
		}
		canvas.Rect(el.Origin.X, el.Origin.Y, el.Width, el.Height, attrs...)
	case scene.KindText:
		canvas.Decimals = decimals(el.Origin.X, el.Origin.Y)
		canvas.Text(el.Origin.X, el.Origin.Y, el.Text, attrs...)
	case scene.KindMarker:
		drawMarker(canvas, el)
	}
}

func drawMarker(canvas *svg.SVG, el scene.Element) {
	x, y := el.Center.X, el.Center.Y
	canvas.Decimals = decimals(x, y)
	shape := styleString(scene.Style{
		Fill:        el.Style.Fill,
		Stroke:      el.Style.Stroke,
		StrokeWidth: el.Style.StrokeWidth,
	})

	if el.ID != "" {
		canvas.Gid(groupID(el.ID))
	} else {
		canvas.Group()
	}
	canvas.Roundrect(x-glyphWidth/2, y-glyphHeight/2, glyphWidth, glyphHeight, glyphHeight/2, glyphHeight/2, shape)
	canvas.Circle(x-glyphWidth/2, y, glyphEndR, shape)
	canvas.Circle(x+glyphWidth/2, y, glyphEndR, shape)
	if el.Text != "" {
		fill := el.Style.LabelFill
		if fill == "" {
			fill = el.Style.Stroke
		}
		label := styleString(scene.Style{
			Fill:       fill,
			FontSize:   el.Style.FontSize,
			FontWeight: el.Style.FontWeight,
			TextAnchor: el.Style.TextAnchor,
		})
		canvas.Text(x, y+labelOffsetY, el.Text, label)
	}
	canvas.Gend()
}

func attributes(el scene.Element) []string {
	var attrs []string
	if el.ID != "" {
		attrs = append(attrs, fmt.Sprintf(`id="%s"`, svgID(el.ID)))
	}
	if st := styleString(el.Style); st != "" {
		attrs = append(attrs, st)
	}
	return attrs
}

// styleString renders a CSS style declaration list. Zero values are skipped.
func styleString(st scene.Style) string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+":"+v)
		}
	}
	num := func(k string, v float64) {
		if v != 0 {
			add(k, geo.FormatFloat(v))
		}
	}

	add("fill", st.Fill)
	num("fill-opacity", st.FillOpacity)
	add("stroke", st.Stroke)
	num("stroke-width", st.StrokeWidth)
	num("stroke-opacity", st.StrokeOpacity)
	add("stroke-dasharray", st.DashArray)
	add("stroke-linecap", st.LineCap)
	if st.FontSize != 0 {
		add("font-size", geo.FormatFloat(st.FontSize)+"px")
	}
	add("font-weight", st.FontWeight)
	add("text-anchor", st.TextAnchor)
	if st.FontSize != 0 {
		add("font-family", "sans-serif")
	}
	return strings.Join(parts, ";")
}

// svgID turns an element ID into an XML-safe id attribute value.
func svgID(id string) string {
	return html.EscapeString(groupID(id))
}

// groupID is svgID without escaping; svgo escapes group ids itself.
func groupID(id string) string {
	return strings.ReplaceAll(id, ":", "-")
}

// decimals returns the fractional digits needed to write every value exactly,
// capped at maxDecimals.
func decimals(vs ...float64) int {
	d := 0
	for _, v := range vs {
		str := strconv.FormatFloat(v, 'f', -1, 64)
		if i := strings.IndexByte(str, '.'); i >= 0 {
			d = max(d, len(str)-i-1)
		}
	}
	return min(d, maxDecimals)
}
