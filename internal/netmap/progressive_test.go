package netmap

import (
	"bytes"
	"io"
	"testing"

	"github.com/annel0/vxl-engine/internal/world"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatGrid — мир с одним слоем bedrock: кодируется быстро и предсказуемо.
func flatGrid(t testing.TB) *world.Grid {
	g := world.NewGrid()
	for y := 0; y < world.MapY; y++ {
		for x := 0; x < world.MapX; x++ {
			require.NoError(t, g.SetSolid(x, y, world.MapZ-1, true))
			require.NoError(t, g.SetColor(x, y, world.MapZ-1, 0xFF808080))
		}
	}
	return g
}

func inflate(t *testing.T, blob []byte) []byte {
	r, err := zlib.NewReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func TestProgressiveMatchesBatchEncoding(t *testing.T) {
	g := flatGrid(t)
	want := world.SaveVXL(g)

	p, err := NewProgressive(g, false)
	require.NoError(t, err)

	var blob []byte
	for p.DataLeft() {
		chunk := p.Read(8 * 1024)
		if len(chunk) == 0 {
			break
		}
		blob = append(blob, chunk...)
	}

	assert.Less(t, len(blob), len(want), "zlib должен сжимать однородную карту")
	assert.Equal(t, want, inflate(t, blob), "распакованный поток равен пакетному кодированию")
	assert.False(t, p.DataLeft())
}

func TestProgressiveIsolatedFromSource(t *testing.T) {
	g := flatGrid(t)
	want := world.SaveVXL(g)

	p, err := NewProgressive(g, false)
	require.NoError(t, err)

	// Мутация оригинала после создания передачи невидима
	require.NoError(t, g.SetSolid(10, 10, 30, true))

	assert.Equal(t, want, inflate(t, p.ReadAll()))
}

func TestProgressiveChildReplays(t *testing.T) {
	g := flatGrid(t)

	parent, err := NewProgressive(g, true)
	require.NoError(t, err)

	// Родитель уже отдал часть данных до подключения ребёнка
	head := parent.Read(4 * 1024)
	require.NotEmpty(t, head)

	child, err := parent.Child()
	require.NoError(t, err)

	// Ребёнок начинает с нулевой позиции и сам продвигает родителя
	var fromChild []byte
	for child.DataLeft() {
		chunk := child.Read(4 * 1024)
		if len(chunk) == 0 {
			break
		}
		fromChild = append(fromChild, chunk...)
	}

	assert.Equal(t, parent.backlog, fromChild, "ребёнок должен повторить весь поток родителя")
	assert.Equal(t, world.SaveVXL(g), inflate(t, fromChild))
}

func TestProgressiveChildRequiresBacklog(t *testing.T) {
	p, err := NewProgressive(flatGrid(t), false)
	require.NoError(t, err)
	_, err = p.Child()
	assert.Error(t, err)
}
