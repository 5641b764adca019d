package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBuilderDeterminism(t *testing.T) {
	a := NewMapBuilder(1234).Build()
	b := NewMapBuilder(1234).Build()
	assert.Equal(t, Digest(a), Digest(b), "один сид — одна карта")

	c := NewMapBuilder(4321).Build()
	assert.NotEqual(t, Digest(a), Digest(c), "разные сиды дают разные карты")
}

func TestMapBuilderBedrock(t *testing.T) {
	g := NewMapBuilder(77).Build()
	for _, p := range [][2]int{{0, 0}, {511, 511}, {256, 256}, {17, 400}} {
		solid, err := g.Solid(p[0], p[1], MapZ-1)
		require.NoError(t, err)
		assert.True(t, solid, "bedrock на z=63 всегда solid, столбец (%d,%d)", p[0], p[1])
	}
}

func TestMapBuilderSurfaceRange(t *testing.T) {
	g := NewMapBuilder(77).Build()

	for _, p := range [][2]int{{0, 0}, {100, 300}, {511, 0}} {
		// Верхний solid-воксель столбца должен лежать не выше HighlandZ
		top := -1
		for z := 0; z < MapZ; z++ {
			solid, err := g.Solid(p[0], p[1], z)
			require.NoError(t, err)
			if solid {
				top = z
				break
			}
		}
		require.NotEqual(t, -1, top)
		assert.GreaterOrEqual(t, top, HighlandZ)

		// Поверхность окрашена
		_, ok, err := g.Color(p[0], p[1], top)
		require.NoError(t, err)
		assert.True(t, ok, "верх столбца должен нести цвет")
	}
}

func TestMapBuilderRoundTrips(t *testing.T) {
	g := NewMapBuilder(2026).Build()
	dec, err := LoadVXL(SaveVXL(g))
	require.NoError(t, err)
	assert.Equal(t, g.SolidCount(), dec.SolidCount(), "геометрия переживает цикл кодека")
}
