// pkg/core/match.go
package core

// Player is a participant with a fixed position in the diagram
type Player struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Position Position2D `json:"position"`
}

// Movement is one run of a player, either carrying the ball or off it.
// A player may have several movements, one per possession state.
type Movement struct {
	PlayerID  string   `json:"playerId"`
	WithBall  bool     `json:"withBall"`
	Waypoints Polyline `json:"waypoints"`
}

// Pass is a single touch, from one player to another.
// Passes are listed in chronological order.
type Pass struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// MatchInfo describes the match the goal was scored in
type MatchInfo struct {
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Year     int    `json:"year"`
	Caption  string `json:"caption"`
}

// Dataset is everything needed to draw one goal
type Dataset struct {
	Match     MatchInfo  `json:"match"`
	Players   []Player   `json:"players"`
	Movements []Movement `json:"movements"`
	Passes    []Pass     `json:"passes"`
	BallPath  Polyline   `json:"ballPath"`
}

// PlayerIndex maps player IDs to players. When IDs repeat, the first
// occurrence wins.
func (d *Dataset) PlayerIndex() map[string]Player {
	idx := make(map[string]Player, len(d.Players))
	for _, p := range d.Players {
		if _, ok := idx[p.ID]; ok {
			continue
		}
		idx[p.ID] = p
	}
	return idx
}

// Clone returns a deep copy of the dataset.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Match:    d.Match,
		Players:  append([]Player(nil), d.Players...),
		Passes:   append([]Pass(nil), d.Passes...),
		BallPath: d.BallPath.Clone(),
	}
	if d.Movements != nil {
		out.Movements = make([]Movement, len(d.Movements))
		for i, m := range d.Movements {
			m.Waypoints = m.Waypoints.Clone()
			out.Movements[i] = m
		}
	}
	return out
}
