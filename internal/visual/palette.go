package visual

// Palette holds the fixed presentation colours and stroke weights
type Palette struct {
	PitchFill string
	PitchLine string

	// Both trail styles share one colour family.
	Trail               string
	TrailOffBallWidth   float64
	TrailOffBallOpacity float64
	TrailOffBallDash    string
	TrailOnBallWidth    float64

	Ball      string
	BallWidth float64

	Pass        string
	PassWidth   float64
	PassOpacity float64
	TouchRadius float64

	Player        string
	PlayerOutline string
	Label         string
	LabelSize     float64

	HeaderFill string
	HeaderText string
}

// DefaultPalette returns the palette used for every render
func DefaultPalette() Palette {
	return Palette{
		PitchFill: "#2f7d3a",
		PitchLine: "#e8f5e9",

		Trail:               "#75aadb",
		TrailOffBallWidth:   1.5,
		TrailOffBallOpacity: 0.5,
		TrailOffBallDash:    "4 3",
		TrailOnBallWidth:    3,

		Ball:      "#ffd54f",
		BallWidth: 2,

		Pass:        "#ffffff",
		PassWidth:   1,
		PassOpacity: 0.8,
		TouchRadius: 3,

		Player:        "#75aadb",
		PlayerOutline: "#ffffff",
		Label:         "#ffffff",
		LabelSize:     10,

		HeaderFill: "#0f2a44",
		HeaderText: "#ffffff",
	}
}
