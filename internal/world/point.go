package world

import "github.com/annel0/vxl-engine/internal/vec"

// walkableZ — слой, по которому ходят игроки: solid на z == 62 означает
// проходимую поверхность.
const walkableZ = 62

func clampCoord(v int) int {
	if v < 0 {
		return 0
	}
	if v > MapX-1 {
		return MapX - 1
	}
	return v
}

// GetRandomPoint выбирает случайную проходимую точку в прямоугольнике
// [x1,x2)×[y1,y2). Координаты зажимаются в [0,511]. r1 и r2 — случайные
// значения из [0,1): r1 выбирает индекс из найденных точек, при пустом
// прямоугольнике обе величины дают равномерную точку внутри него.
func GetRandomPoint(g *Grid, x1, y1, x2, y2 int, r1, r2 float64) (int, int) {
	x1 = clampCoord(x1)
	y1 = clampCoord(y1)
	x2 = clampCoord(x2)
	y2 = clampCoord(y2)

	var items []vec.Vec2
	for x := x1; x < x2; x++ {
		for y := y1; y < y2; y++ {
			if g.solidKey(PosKey(x, y, walkableZ)) {
				items = append(items, vec.Vec2{X: x, Y: y})
			}
		}
	}

	if len(items) == 0 {
		return int(r1*float64(x2-x1)) + x1, int(r2*float64(y2-y1)) + y1
	}
	p := items[int(r1*float64(len(items)))]
	return p.X, p.Y
}
