package world

import "github.com/aquilax/go-perlin"

// Константы рельефа: поверхность суши лежит между HighlandZ и WaterZ,
// всё, что ниже WaterZ, затапливается до одного слоя синего дна.
const (
	HighlandZ = 30 // самый высокий допустимый уровень поверхности
	WaterZ    = 60 // ниже этого уровня — вода
)

// Цвета ландшафта (ARGB, альфу потом перезапишет теневой проход).
const (
	colorWater = 0xFF1A4FB0
	colorSand  = 0xFFC2B280
	colorGrass = 0xFF4C8A3C
	colorDirt  = 0xFF6B4A2B
	colorRock  = 0xFF8A8A8A
)

// MapBuilder генерирует ландшафт карты на шуме Перлина.
// Один и тот же сид всегда даёт одну и ту же карту.
type MapBuilder struct {
	Seed       int64
	NoiseScale float64 // масштаб основного шума (сглаженность рельефа)
}

// NewMapBuilder создаёт генератор карты с настройками по умолчанию.
func NewMapBuilder(seed int64) *MapBuilder {
	return &MapBuilder{
		Seed:       seed,
		NoiseScale: 0.008,
	}
}

// Build генерирует полный мир: перлин-карта высот по столбцам, вода в
// низинах, bedrock на z=63 всегда solid. Цвета получают только три
// верхних вокселя столбца — внутренность кодируется DefaultColor.
func (mb *MapBuilder) Build() *Grid {
	noise := perlin.NewPerlin(2.0, 2.0, 3, mb.Seed)
	g := NewGrid()

	for y := 0; y < MapY; y++ {
		for x := 0; x < MapX; x++ {
			// Высота от 0 до 1 (шум Перлина возвращает -1..1).
			h := (noise.Noise2D(float64(x)*mb.NoiseScale, float64(y)*mb.NoiseScale) + 1.0) / 2.0
			ground := MapZ - 2 - int(h*float64(MapZ-2-HighlandZ))

			if ground >= WaterZ {
				// Низина: затоплена, остаётся только синее дно.
				g.setSolidKey(PosKey(x, y, MapZ-1), true)
				g.colors[PosKey(x, y, MapZ-1)] = colorWater
				continue
			}

			for z := ground; z < MapZ; z++ {
				g.setSolidKey(PosKey(x, y, z), true)
			}
			g.colors[PosKey(x, y, ground)] = mb.surfaceColor(ground)
			g.colors[PosKey(x, y, ground+1)] = colorDirt
			g.colors[PosKey(x, y, ground+2)] = colorDirt
		}
	}
	return g
}

// surfaceColor подбирает цвет поверхности по высоте столбца.
func (mb *MapBuilder) surfaceColor(ground int) uint32 {
	switch {
	case ground >= WaterZ-3:
		return colorSand // прибрежная полоса
	case ground <= HighlandZ+6:
		return colorRock // вершины
	default:
		return colorGrass
	}
}
