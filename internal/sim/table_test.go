package sim

import (
	"bytes"
	"context"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdur667/CS182-Final/internal/catanlog"
	"github.com/Abdur667/CS182-Final/internal/config"
	"github.com/Abdur667/CS182-Final/internal/game"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

func TestNewTableSeatsConfiguredAgents(t *testing.T) {
	cfg := config.Default()
	tbl, err := NewTable(cfg, 3, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), tbl.Seed)
	assert.Equal(t, game.PreGamePlacingPiece{Kind: pieces.Settlement}, tbl.Game.State())
	assert.Len(t, tbl.Runner.Agents, 4)
	for _, pc := range cfg.Players {
		found := false
		for p, id := range tbl.Meta.Agents {
			if p.Seat == pc.Seat {
				assert.Equal(t, pc.Agent, id)
				found = true
			}
		}
		assert.True(t, found, "seat %d", pc.Seat)
	}
}

func TestSameSeedSameGame(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MaxTurns = 60

	play := func() string {
		var buf bytes.Buffer
		clock := quartz.NewMock(t)
		tbl, err := NewTable(cfg, 42, catanlog.NewWriter(&buf, clock), nil)
		require.NoError(t, err)
		_, err = tbl.Runner.Run(context.Background())
		require.NoError(t, err)
		return buf.String()
	}

	first := play()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, play())
}

func TestNewTableRejectsUnknownAgent(t *testing.T) {
	cfg := config.Default()
	cfg.Players[2].Agent = "oracle"

	_, err := NewTable(cfg, 1, nil, nil)
	assert.Error(t, err)
}
