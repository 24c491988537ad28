package tetromino_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsComplete(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		for r := tetromino.Rotation(0); r < tetromino.RotationCount; r++ {
			t.Run(fmt.Sprintf("%s/%d", kind, r), func(t *testing.T) {
				offsets := tetromino.Offsets(kind, r)

				seen := make(map[tetromino.Offset]bool)
				for _, off := range offsets {
					assert.GreaterOrEqual(t, off.DX, 0)
					assert.GreaterOrEqual(t, off.DY, 0)
					assert.Less(t, off.DX, 4)
					assert.Less(t, off.DY, 4)
					seen[off] = true
				}
				assert.Len(t, seen, 4, "pose must cover four distinct cells")
			})
		}
	}
}

func TestOffsetsLiteralPoses(t *testing.T) {
	tests := []struct {
		kind     tetromino.Kind
		rotation tetromino.Rotation
		want     [4]tetromino.Offset
	}{
		{tetromino.I, 0, [4]tetromino.Offset{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{tetromino.I, 1, [4]tetromino.Offset{{2, 0}, {2, 1}, {2, 2}, {2, 3}}},
		{tetromino.I, 3, [4]tetromino.Offset{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{tetromino.T, 0, [4]tetromino.Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{tetromino.J, 3, [4]tetromino.Offset{{0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		{tetromino.L, 0, [4]tetromino.Offset{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{tetromino.S, 2, [4]tetromino.Offset{{1, 1}, {2, 1}, {0, 2}, {1, 2}}},
		{tetromino.Z, 1, [4]tetromino.Offset{{2, 0}, {1, 1}, {2, 1}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.kind, tt.rotation), func(t *testing.T) {
			assert.Equal(t, tt.want, tetromino.Offsets(tt.kind, tt.rotation))
		})
	}
}

func TestOSameInEveryRotation(t *testing.T) {
	base := tetromino.Offsets(tetromino.O, 0)
	for r := tetromino.Rotation(1); r < tetromino.RotationCount; r++ {
		assert.Equal(t, base, tetromino.Offsets(tetromino.O, r))
	}
}

func TestOffsetsPanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { tetromino.Offsets(tetromino.Kind(7), 0) })
	assert.Panics(t, func() { tetromino.Offsets(tetromino.T, 4) })
}

func TestRotationWraps(t *testing.T) {
	assert.Equal(t, tetromino.Rotation(0), tetromino.Rotation(3).Next())
	assert.Equal(t, tetromino.Rotation(3), tetromino.Rotation(0).Prev())
	assert.Equal(t, tetromino.Rotation(2), tetromino.Rotation(1).Next())
}

func TestPieceCellsAndExtent(t *testing.T) {
	p := tetromino.Piece{Kind: tetromino.I, Rotation: 1, X: 4, Y: 2}

	cells := p.Cells()
	require.Len(t, cells, 4)
	assert.Equal(t, tetromino.Point{X: 6, Y: 2}, cells[0])
	assert.Equal(t, tetromino.Point{X: 6, Y: 5}, cells[3])

	top, bottom := p.Extent()
	assert.Equal(t, 2, top)
	assert.Equal(t, 5, bottom)
}

func TestPieceMovedAndRotatedAreCopies(t *testing.T) {
	p := tetromino.Piece{Kind: tetromino.T, X: 3, Y: 3}

	moved := p.Moved(-1, 1)
	rotated := p.Rotated()

	assert.Equal(t, 3, p.X)
	assert.Equal(t, tetromino.Rotation(0), p.Rotation)
	assert.Equal(t, 2, moved.X)
	assert.Equal(t, 4, moved.Y)
	assert.Equal(t, tetromino.Rotation(1), rotated.Rotation)
	assert.Equal(t, p.X, rotated.X)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "I", tetromino.I.String())
	assert.Equal(t, "Z", tetromino.Z.String())
	assert.Equal(t, "Kind(9)", tetromino.Kind(9).String())
}
