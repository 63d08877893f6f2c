package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/domain/entity"
)

func score(v int) *int { return &v }

func result(home, away uint, hs, as int) entity.Game {
	return entity.Game{HomeTeamID: home, AwayTeamID: away, Status: entity.GameCompleted, HomeScore: score(hs), AwayScore: score(as)}
}

func teams(names ...string) []entity.Team {
	out := make([]entity.Team, len(names))
	for i, n := range names {
		out[i] = entity.Team{ID: uint(i + 1), Name: n}
	}
	return out
}

func TestCompute_WinDrawLoss(t *testing.T) {
	rows := Compute(teams("A", "B", "C"), []entity.Game{
		result(1, 2, 2, 0),
		result(2, 3, 1, 1),
		result(3, 1, 0, 3),
	})

	require.Len(t, rows, 3)
	assert.Equal(t, Row{TeamID: 1, Team: "A", Played: 2, Wins: 2, GoalsFor: 5, GoalsAgainst: 0, GoalDifference: 5, Points: 6}, rows[0])
	assert.Equal(t, Row{TeamID: 2, Team: "B", Played: 2, Draws: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 3, GoalDifference: -2, Points: 1}, rows[1])
	assert.Equal(t, Row{TeamID: 3, Team: "C", Played: 2, Draws: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 4, GoalDifference: -3, Points: 1}, rows[2])
}

func TestCompute_SingleResults(t *testing.T) {
	t.Run("win gives plus and minus one", func(t *testing.T) {
		rows := Compute(teams("A", "B"), []entity.Game{result(1, 2, 2, 1)})

		assert.Equal(t, Row{TeamID: 1, Team: "A", Played: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3}, rows[0])
		assert.Equal(t, Row{TeamID: 2, Team: "B", Played: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1, Points: 0}, rows[1])
	})

	t.Run("draw gives both a point", func(t *testing.T) {
		rows := Compute(teams("A", "B"), []entity.Game{result(1, 2, 1, 1)})

		for _, r := range rows {
			assert.Equal(t, 1, r.Points, r.Team)
			assert.Equal(t, 1, r.Draws, r.Team)
			assert.Equal(t, 0, r.GoalDifference, r.Team)
		}
	})
}

func TestCompute_EqualPointsOrderedByGoalDifference(t *testing.T) {
	rows := Compute(teams("A", "B", "C", "D", "E"), []entity.Game{
		result(1, 4, 1, 0),
		result(1, 5, 1, 0),
		result(2, 4, 3, 0),
		result(2, 5, 2, 0),
		result(3, 4, 1, 0),
	})

	require.Len(t, rows, 5)
	got := [][3]any{}
	for _, r := range rows[:3] {
		got = append(got, [3]any{r.Team, r.Points, r.GoalDifference})
	}
	assert.Equal(t, [][3]any{{"B", 6, 5}, {"A", 6, 2}, {"C", 3, 1}}, got)
}

func TestCompute_TieBreakers(t *testing.T) {
	t.Run("goal difference before goals for", func(t *testing.T) {
		rows := Compute(teams("A", "B", "C", "D"), []entity.Game{
			result(1, 3, 5, 4),
			result(2, 4, 2, 0),
		})

		assert.Equal(t, "B", rows[0].Team)
		assert.Equal(t, "A", rows[1].Team)
	})

	t.Run("goals for when difference is equal", func(t *testing.T) {
		rows := Compute(teams("A", "B", "C", "D"), []entity.Game{
			result(1, 3, 1, 0),
			result(2, 4, 3, 2),
		})

		assert.Equal(t, "B", rows[0].Team)
		assert.Equal(t, "A", rows[1].Team)
	})

	t.Run("full tie keeps team order", func(t *testing.T) {
		rows := Compute(teams("A", "B", "C"), []entity.Game{
			result(1, 2, 1, 1),
		})

		assert.Equal(t, []string{"A", "B", "C"}, []string{rows[0].Team, rows[1].Team, rows[2].Team})
	})
}

func TestCompute_SkipsUnfinishedAndUnknown(t *testing.T) {
	inProgress := result(1, 2, 5, 0)
	inProgress.Status = entity.GameInProgress
	noAway := result(1, 2, 5, 0)
	noAway.AwayScore = nil
	unknown := result(1, 99, 5, 0)

	rows := Compute(teams("A", "B"), []entity.Game{inProgress, noAway, unknown})

	for _, r := range rows {
		assert.Zero(t, r.Played, r.Team)
		assert.Zero(t, r.Points, r.Team)
	}
}

func TestCompute_Empty(t *testing.T) {
	assert.Empty(t, Compute(nil, nil))
	rows := Compute(teams("A"), nil)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{TeamID: 1, Team: "A"}, rows[0])
}

// mockStandingsRepository is a mock implementation of the StandingsRepository interface.
type mockStandingsRepository struct {
	TeamsFunc          func(ctx context.Context) ([]entity.Team, error)
	CompletedGamesFunc func(ctx context.Context) ([]entity.Game, error)
}

func (m *mockStandingsRepository) Teams(ctx context.Context) ([]entity.Team, error) {
	return m.TeamsFunc(ctx)
}

func (m *mockStandingsRepository) CompletedGames(ctx context.Context) ([]entity.Game, error) {
	return m.CompletedGamesFunc(ctx)
}

func TestStandingsUsecase_Table(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := NewStandingsUsecase(&mockStandingsRepository{
			TeamsFunc: func(ctx context.Context) ([]entity.Team, error) { return teams("A", "B"), nil },
			CompletedGamesFunc: func(ctx context.Context) ([]entity.Game, error) {
				return []entity.Game{result(1, 2, 0, 1)}, nil
			},
		})

		rows, err := uc.Table(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "B", rows[0].Team)
	})

	t.Run("repository error", func(t *testing.T) {
		boom := errors.New("boom")
		uc := NewStandingsUsecase(&mockStandingsRepository{
			TeamsFunc: func(ctx context.Context) ([]entity.Team, error) { return nil, boom },
		})

		_, err := uc.Table(context.Background())

		assert.ErrorIs(t, err, boom)
	})
}
