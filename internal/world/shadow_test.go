package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunblockDirectHit(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.SetSolid(5, 0, 0, true))

	// Первый шаг луча из (5,1,1) попадает в (5,0,0): 127 - 18 = 109
	assert.Equal(t, 109, Sunblock(g, 5, 1, 1))

	// Верхний слой не трассируется вовсе
	assert.Equal(t, 127, Sunblock(g, 5, 1, 0))
}

func TestSunblockWrapsAroundMapEdge(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.SetSolid(7, 511, 62, true))

	// Луч из y=0 уходит за край карты и замыкается на y=511
	assert.Equal(t, 109, Sunblock(g, 7, 0, 63))
}

func TestSunblockFullOcclusion(t *testing.T) {
	g := NewGrid()
	// Вся диагональ занята: 127 - (18+16+...+2) = 37
	for i := 1; i <= 9; i++ {
		require.NoError(t, g.SetSolid(40, 40-i, 40-i, true))
	}
	assert.Equal(t, 37, Sunblock(g, 40, 40, 40))
}

func TestUpdateShadows(t *testing.T) {
	g := NewGrid()
	require.NoError(t, g.SetSolid(5, 0, 0, true))
	require.NoError(t, g.SetSolid(5, 1, 1, true))
	require.NoError(t, g.SetColor(5, 1, 1, 0xFFFF0000))

	solidBefore := g.SolidCount()
	UpdateShadows(g)

	c, ok, err := g.Color(5, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint32(0x6DFF0000), c, "альфа должна стать 109 (0x6D), RGB не меняется")
	assert.Equal(t, solidBefore, g.SolidCount(), "геометрия не меняется")

	// Идемпотентность: повторный проход ничего не меняет
	before := Digest(g)
	UpdateShadows(g)
	assert.Equal(t, before, Digest(g))
}

func TestUpdateShadowsTouchesOnlyAlpha(t *testing.T) {
	g := NewMapBuilder(5).Build()
	rgb := make(map[uint32]uint32, g.ColorCount())
	for k, c := range g.colors {
		rgb[k] = c & 0x00FFFFFF
	}

	UpdateShadows(g)

	assert.Equal(t, len(rgb), g.ColorCount(), "набор ключей карты цветов не меняется")
	for k, c := range g.colors {
		assert.Equal(t, rgb[k], c&0x00FFFFFF, "младшие 24 бита неизменны")
	}
}
