package usecase

import (
	"sort"

	"youthcup_backend/internal/domain/entity"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// Row is one team's line in the league table.
type Row struct {
	TeamID         uint   `json:"teamId"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

func (r *Row) record(scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Wins++
		r.Points += pointsWin
	case scored < conceded:
		r.Losses++
	default:
		r.Draws++
		r.Points += pointsDraw
	}
}

// Compute builds the league table. Only completed games with both scores
// count; games naming an unknown team are skipped. Rows are ordered by
// points, then goal difference, then goals scored, and otherwise keep the
// order of teams.
func Compute(teams []entity.Team, games []entity.Game) []Row {
	rows := make([]Row, len(teams))
	index := make(map[uint]int, len(teams))
	for i, t := range teams {
		rows[i] = Row{TeamID: t.ID, Team: t.Name}
		index[t.ID] = i
	}

	for _, g := range games {
		if g.Status != entity.GameCompleted || !g.HasResult() {
			continue
		}
		hi, okHome := index[g.HomeTeamID]
		ai, okAway := index[g.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		rows[hi].record(*g.HomeScore, *g.AwayScore)
		rows[ai].record(*g.AwayScore, *g.HomeScore)
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	return rows
}
