package statisticsservice

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	statisticsdb "github.com/gridline-club/podium-bot/app/modules/statistics/infrastructure/repositories"
	sharedtypes "github.com/gridline-club/podium-bot/app/shared/types"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func TestStatisticsService_RenderStandingsChart(t *testing.T) {
	seasonID := sharedtypes.SeasonID("2026")

	standings := func(usernames ...string) func(context.Context, sharedtypes.SeasonID) ([]statisticsdb.UserStatistics, error) {
		return func(ctx context.Context, id sharedtypes.SeasonID) ([]statisticsdb.UserStatistics, error) {
			stats := make([]statisticsdb.UserStatistics, 0, len(usernames))
			for i, username := range usernames {
				stats = append(stats, statisticsdb.UserStatistics{
					UserID:      sharedtypes.UserID(username),
					Username:    username,
					TotalPoints: (len(usernames) - i) * 10,
				})
			}
			return stats, nil
		}
	}

	t.Run("renders a PNG for a populated season", func(t *testing.T) {
		f := newFixture()
		f.stats.ListBySeasonFunc = standings("alice", "bob", "carol")

		data, err := f.svc.RenderStandingsChart(context.Background(), seasonID, 0)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngHeader), "expected PNG output")
	})

	t.Run("clamps the limit to the number of rows", func(t *testing.T) {
		f := newFixture()
		f.stats.ListBySeasonFunc = standings("alice", "bob")

		data, err := f.svc.RenderStandingsChart(context.Background(), seasonID, 50)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngHeader), "expected PNG output")
	})

	t.Run("renders a placeholder when no statistics exist", func(t *testing.T) {
		f := newFixture()

		data, err := f.svc.RenderStandingsChart(context.Background(), seasonID, 10)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, pngHeader), "expected PNG output")
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		f := newFixture()
		f.stats.ListBySeasonFunc = func(ctx context.Context, id sharedtypes.SeasonID) ([]statisticsdb.UserStatistics, error) {
			return nil, errors.New("connection reset")
		}

		data, err := f.svc.RenderStandingsChart(context.Background(), seasonID, 10)
		require.Error(t, err)
		assert.Nil(t, data)
	})
}
