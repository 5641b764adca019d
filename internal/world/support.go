package world

import "github.com/annel0/vxl-engine/internal/vec"

// supportFloor — глубина, начиная с которой воксель считается опорой:
// остров, дотянувшийся до z >= 62, держится на bedrock.
const supportFloor = 62

// стартовая ёмкость стека заливки; дальше растёт по мере обхода,
// худшие регионы достигают миллионов вокселей
const floodStackReserve = 4096

// CheckSupport выполняет заливку от затравочного вокселя и определяет,
// связан ли он с опорным слоем. Возвращает 0, если регион опирается на
// bedrock (или затравка — воздух/вне карты), иначе размер оторванного
// острова. При destroy весь остров превращается в воздух, цвета
// стираются. Весь скретч локален вызову.
func CheckSupport(g *Grid, x, y, z int, destroy bool) int {
	if !InBounds(x, y, z) || !g.solidKey(PosKey(x, y, z)) {
		return 0
	}

	stack := make([]vec.Vec3, 0, floodStackReserve)
	visited := make(map[uint32]struct{})
	stack = append(stack, vec.Vec3{X: x, Y: y, Z: z})

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.Z >= supportFloor {
			return 0
		}

		key := PosKey(node.X, node.Y, node.Z)
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		for _, d := range vec.Axis6 {
			n := node.Add(d)
			if InBounds(n.X, n.Y, n.Z) && g.solidKey(PosKey(n.X, n.Y, n.Z)) {
				stack = append(stack, n)
			}
		}
	}

	if destroy {
		for key := range visited {
			g.setSolidKey(key, false)
		}
	}
	return len(visited)
}
