// Package dataset holds the fixed description of the goal that is drawn.
package dataset

import "github.com/touchline/goalviz/pkg/core"

// goal is Esteban Cambiasso's 24-pass team goal for Argentina against Serbia
// and Montenegro. Argentina attack the top goal.
var goal = core.Dataset{
	Match: core.MatchInfo{
		HomeTeam: "Argentina",
		AwayTeam: "Serbia and Montenegro",
		Year:     2006,
		Caption:  "Cambiasso finishes a 24-pass move started in Argentina's own half",
	},
	Players: []core.Player{
		{ID: "heinze", Name: "Heinze", Position: core.Position2D{X: 110, Y: 520}},
		{ID: "ayala", Name: "Ayala", Position: core.Position2D{X: 180, Y: 560}},
		{ID: "burdisso", Name: "Burdisso", Position: core.Position2D{X: 290, Y: 555}},
		{ID: "sorin", Name: "Sorín", Position: core.Position2D{X: 60, Y: 430}},
		{ID: "mascherano", Name: "Mascherano", Position: core.Position2D{X: 210, Y: 450}},
		{ID: "rodriguez", Name: "Rodríguez", Position: core.Position2D{X: 330, Y: 420}},
		{ID: "cambiasso", Name: "Cambiasso", Position: core.Position2D{X: 170, Y: 360}},
		{ID: "riquelme", Name: "Riquelme", Position: core.Position2D{X: 230, Y: 330}},
		{ID: "saviola", Name: "Saviola", Position: core.Position2D{X: 250, Y: 210}},
		{ID: "crespo", Name: "Crespo", Position: core.Position2D{X: 200, Y: 120}},
	},
	Movements: []core.Movement{
		{PlayerID: "sorin", WithBall: false, Waypoints: core.Polyline{
			{X: 60, Y: 430}, {X: 70, Y: 360}, {X: 90, Y: 300},
		}},
		{PlayerID: "rodriguez", WithBall: true, Waypoints: core.Polyline{
			{X: 330, Y: 420}, {X: 345, Y: 380}, {X: 335, Y: 330},
		}},
		{PlayerID: "rodriguez", WithBall: false, Waypoints: core.Polyline{
			{X: 335, Y: 330}, {X: 320, Y: 270}, {X: 300, Y: 230},
		}},
		{PlayerID: "mascherano", WithBall: true, Waypoints: core.Polyline{
			{X: 210, Y: 450}, {X: 200, Y: 420},
		}},
		{PlayerID: "riquelme", WithBall: true, Waypoints: core.Polyline{
			{X: 230, Y: 330}, {X: 245, Y: 300},
		}},
		{PlayerID: "cambiasso", WithBall: false, Waypoints: core.Polyline{
			{X: 170, Y: 360}, {X: 150, Y: 300}, {X: 175, Y: 230}, {X: 205, Y: 170}, {X: 215, Y: 140},
		}},
		{PlayerID: "saviola", WithBall: true, Waypoints: core.Polyline{
			{X: 250, Y: 210}, {X: 275, Y: 180}, {X: 265, Y: 150},
		}},
		{PlayerID: "crespo", WithBall: false, Waypoints: core.Polyline{
			{X: 200, Y: 120}, {X: 210, Y: 105}, {X: 205, Y: 118},
		}},
		{PlayerID: "cambiasso", WithBall: true, Waypoints: core.Polyline{
			{X: 215, Y: 140}, {X: 205, Y: 110}, {X: 195, Y: 85},
		}},
	},
	Passes: []core.Pass{
		{From: "rodriguez", To: "heinze"},
		{From: "heinze", To: "ayala"},
		{From: "ayala", To: "burdisso"},
		{From: "burdisso", To: "mascherano"},
		{From: "mascherano", To: "sorin"},
		{From: "sorin", To: "cambiasso"},
		{From: "cambiasso", To: "riquelme"},
		{From: "riquelme", To: "mascherano"},
		{From: "mascherano", To: "ayala"},
		{From: "ayala", To: "heinze"},
		{From: "heinze", To: "sorin"},
		{From: "sorin", To: "mascherano"},
		{From: "mascherano", To: "riquelme"},
		{From: "riquelme", To: "rodriguez"},
		{From: "rodriguez", To: "cambiasso"},
		{From: "cambiasso", To: "sorin"},
		{From: "sorin", To: "riquelme"},
		{From: "riquelme", To: "cambiasso"},
		{From: "cambiasso", To: "rodriguez"},
		{From: "rodriguez", To: "riquelme"},
		{From: "riquelme", To: "saviola"},
		{From: "saviola", To: "cambiasso"},
		{From: "cambiasso", To: "crespo"},
		{From: "crespo", To: "cambiasso"},
	},
	BallPath: core.Polyline{
		{X: 330, Y: 420},
		{X: 110, Y: 520},
		{X: 180, Y: 560},
		{X: 290, Y: 555},
		{X: 210, Y: 450},
		{X: 60, Y: 430},
		{X: 170, Y: 360},
		{X: 230, Y: 330},
		{X: 335, Y: 330},
		{X: 245, Y: 300},
		{X: 250, Y: 210},
		{X: 265, Y: 150},
		{X: 215, Y: 140},
		{X: 205, Y: 118},
		{X: 195, Y: 85},
		{X: 200, Y: 8},
	},
}

// Goal returns a copy of the goal dataset. Callers may modify the copy
// freely; the literal itself is never mutated.
func Goal() *core.Dataset {
	return goal.Clone()
}
