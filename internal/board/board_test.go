package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdur667/CS182-Final/internal/hexgrid"
	"github.com/Abdur667/CS182-Final/internal/pieces"
)

var (
	green = pieces.MustPlayer(1, "abdur", "green")
	blue  = pieces.MustPlayer(2, "qlearn", "blue")
)

func lockedBoard() *Board {
	b := New(DefaultOptions(), nil)
	b.Lock()
	return b
}

func TestPresetBoard(t *testing.T) {
	b := New(DefaultOptions(), nil)

	require.Len(t, b.Tiles, 19)
	assert.Len(t, b.Ports, 9)
	assert.Equal(t, 19, b.RobberTile(), "robber starts on the desert")

	desert, ok := b.Tile(19)
	require.True(t, ok)
	assert.Equal(t, Desert, desert.Terrain)
	assert.Zero(t, desert.Number)

	counts := map[Terrain]int{}
	for _, tile := range b.Tiles {
		counts[tile.Terrain]++
		if tile.Terrain != Desert {
			assert.NotZero(t, tile.Number, "tile %d", tile.ID)
		}
	}
	assert.Equal(t, map[Terrain]int{Wood: 4, Wheat: 4, Sheep: 4, Brick: 3, Ore: 3, Desert: 1}, counts)
}

func TestRandomBoardKeepsDistribution(t *testing.T) {
	b := New(Options{Terrain: LayoutRandom, Numbers: LayoutRandom, Ports: LayoutRandom}, rand.New(rand.NewSource(7)))

	counts := map[Terrain]int{}
	for _, tile := range b.Tiles {
		counts[tile.Terrain]++
	}
	assert.Equal(t, 1, counts[Desert])

	desert, ok := b.Tile(b.RobberTile())
	require.True(t, ok)
	assert.Equal(t, Desert, desert.Terrain)
}

func TestEmptyBoard(t *testing.T) {
	b := New(Options{Terrain: LayoutEmpty, Numbers: LayoutEmpty, Ports: LayoutEmpty}, nil)
	assert.Empty(t, b.Ports)
	for _, tile := range b.Tiles {
		assert.Equal(t, Desert, tile.Terrain)
	}
	assert.Equal(t, 1, b.RobberTile())
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Terrain: "hex", Numbers: LayoutPreset, Ports: LayoutPreset}.Validate())
}

func TestPlacePiece(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(b *Board)
		piece   pieces.Piece
		coord   int
		wantErr bool
	}{
		{
			name:  "settlement on free node",
			piece: pieces.New(pieces.Settlement, green),
			coord: 0x38,
		},
		{
			name:  "road on free edge",
			piece: pieces.New(pieces.Road, green),
			coord: 0x38,
		},
		{
			name:    "settlement on edge-only coordinate",
			piece:   pieces.New(pieces.Settlement, green),
			coord:   0x26,
			wantErr: true,
		},
		{
			name:    "occupied node",
			setup:   func(b *Board) { require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, blue), 0x38)) },
			piece:   pieces.New(pieces.Settlement, green),
			coord:   0x38,
			wantErr: true,
		},
		{
			name:  "city upgrades own settlement",
			setup: func(b *Board) { require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x38)) },
			piece: pieces.New(pieces.City, green),
			coord: 0x38,
		},
		{
			name:    "city on another player's settlement",
			setup:   func(b *Board) { require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, blue), 0x38)) },
			piece:   pieces.New(pieces.City, green),
			coord:   0x38,
			wantErr: true,
		},
		{
			name:    "city on empty node",
			piece:   pieces.New(pieces.City, green),
			coord:   0x38,
			wantErr: true,
		},
		{
			name:    "unlocked board",
			setup:   func(b *Board) { b.Unlock() },
			piece:   pieces.New(pieces.Road, green),
			coord:   0x38,
			wantErr: true,
		},
		{
			name:    "robber on locked board",
			piece:   pieces.NewRobber(),
			coord:   0x37,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := lockedBoard()
			if tc.setup != nil {
				tc.setup(b)
			}
			err := b.PlacePiece(tc.piece, tc.coord)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrIllegalPlacement)
				return
			}
			require.NoError(t, err)
			got, ok := b.PieceAt([]pieces.Type{tc.piece.Type}, tc.coord)
			require.True(t, ok)
			assert.Equal(t, tc.piece, got)
		})
	}
}

func TestCityReplacesSettlement(t *testing.T) {
	b := lockedBoard()
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x47))
	require.NoError(t, b.PlacePiece(pieces.New(pieces.City, green), 0x47))

	found := b.GetPieces([]pieces.Type{pieces.Settlement, pieces.City}, 0x47)
	require.Len(t, found, 1)
	assert.Equal(t, pieces.City, found[0].Type)
	assert.Len(t, b.Placements(), 1)
}

func TestNodesAndEdgesDoNotCollide(t *testing.T) {
	b := lockedBoard()
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x38))
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Road, green), 0x38))

	assert.Len(t, b.GetPieces([]pieces.Type{pieces.Settlement, pieces.City}, 0x38), 1)
	assert.Len(t, b.GetPieces([]pieces.Type{pieces.Road}, 0x38), 1)
}

func TestGetPiecesNeverReturnsMoreThanOne(t *testing.T) {
	b := lockedBoard()
	for i, node := range hexgrid.LegalNodeCoords() {
		owner := green
		if i%2 == 0 {
			owner = blue
		}
		require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, owner), node))
	}
	for _, node := range hexgrid.LegalNodeCoords() {
		assert.Len(t, b.GetPieces([]pieces.Type{pieces.Settlement, pieces.City}, node), 1)
		assert.Empty(t, b.GetPieces([]pieces.Type{pieces.City}, node), "type filter applies to the one piece")
	}
}

func TestGetPiecesMixedKindsPanics(t *testing.T) {
	b := lockedBoard()
	assert.Panics(t, func() {
		b.GetPieces([]pieces.Type{pieces.Road, pieces.Settlement}, 0x38)
	})
}

func TestLockIsIdempotent(t *testing.T) {
	b := New(DefaultOptions(), nil)
	b.Lock()
	b.Lock()
	assert.True(t, b.Locked())
	b.Unlock()
	b.Unlock()
	assert.False(t, b.Locked())
}

func TestCloneIsDeep(t *testing.T) {
	b := lockedBoard()
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x38))

	clone := b.Clone()
	require.NoError(t, clone.PlacePiece(pieces.New(pieces.Road, green), 0x38))
	clone.Tiles[0].Number = 99

	assert.Len(t, b.Placements(), 1)
	assert.Len(t, clone.Placements(), 2)
	assert.NotEqual(t, 99, b.Tiles[0].Number)
}

func TestResetClearsAndUnlocks(t *testing.T) {
	b := lockedBoard()
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x38))
	b.Reset()

	assert.Empty(t, b.Placements())
	assert.False(t, b.Locked())
	assert.Equal(t, 19, b.RobberTile())
}

func TestPlayerToPieces(t *testing.T) {
	b := lockedBoard()
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, green), 0x38))
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Road, green), 0x38))
	require.NoError(t, b.PlacePiece(pieces.New(pieces.Settlement, blue), 0x47))

	owned := b.PlayerToPieces()
	assert.Len(t, owned[green], 2)
	assert.Len(t, owned[blue], 1)
}

func TestPortEdge(t *testing.T) {
	p := Port{TileID: 1, Direction: hexgrid.NorthWest, Type: PortAny3}
	e, ok := p.Edge()
	require.True(t, ok)
	assert.Equal(t, 0x27, e)
}
