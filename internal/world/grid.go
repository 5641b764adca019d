package world

import "math/bits"

// Размеры мира фиксированы форматом .vxl: 512x512 столбцов по 64 вокселя.
// Z = 0 — верхний слой (небо), Z = 63 — нижний слой (bedrock).
const (
	MapX = 512
	MapY = 512
	MapZ = 64

	// DefaultColor — цвет ARGB для solid-вокселя без записи в карте цветов.
	// Константа формата, менять нельзя: от неё зависит бинарная совместимость.
	DefaultColor uint32 = 0x674028

	mapCells = MapX * MapY * MapZ
	geoWords = mapCells / 64
)

// Grid хранит воксельный мир: плотную битовую геометрию и разреженную
// карту цветов. Цвета существуют только для solid-вокселей; удаление
// вокселя стирает и его цвет. Grid не потокобезопасен — параллельный
// доступ сериализуется вызывающей стороной.
type Grid struct {
	geometry []uint64          // 1 бит на воксель, ключ = PosKey
	colors   map[uint32]uint32 // ARGB в порядке хоста
}

// NewGrid создаёт пустой мир: весь объём — воздух, цветов нет.
func NewGrid() *Grid {
	return &Grid{
		geometry: make([]uint64, geoWords),
		colors:   make(map[uint32]uint32),
	}
}

// PosKey сворачивает координаты вокселя в плоский ключ.
// Обратное преобразование — KeyXYZ.
func PosKey(x, y, z int) uint32 {
	return uint32(x + y*MapX + z*MapX*MapY)
}

// KeyXYZ восстанавливает координаты вокселя из плоского ключа.
func KeyXYZ(key uint32) (x, y, z int) {
	k := int(key)
	x = k % MapX
	k /= MapX
	y = k % MapY
	z = k / MapY
	return
}

// InBounds проверяет, что координаты лежат внутри мира.
func InBounds(x, y, z int) bool {
	return x >= 0 && x < MapX && y >= 0 && y < MapY && z >= 0 && z < MapZ
}

func (g *Grid) solidKey(key uint32) bool {
	return g.geometry[key>>6]&(1<<(key&63)) != 0
}

func (g *Grid) setSolidKey(key uint32, solid bool) {
	if solid {
		g.geometry[key>>6] |= 1 << (key & 63)
	} else {
		g.geometry[key>>6] &^= 1 << (key & 63)
		delete(g.colors, key)
	}
}

// Solid сообщает, является ли воксель solid.
func (g *Grid) Solid(x, y, z int) (bool, error) {
	if !InBounds(x, y, z) {
		return false, ErrOutOfBounds
	}
	return g.solidKey(PosKey(x, y, z)), nil
}

// SetSolid выставляет или снимает бит геометрии. Снятие бита стирает цвет.
func (g *Grid) SetSolid(x, y, z int, solid bool) error {
	if !InBounds(x, y, z) {
		return ErrOutOfBounds
	}
	g.setSolidKey(PosKey(x, y, z), solid)
	return nil
}

// Color возвращает цвет вокселя и признак его наличия.
// Solid-воксель без записи в карте цветов кодируется как DefaultColor.
func (g *Grid) Color(x, y, z int) (uint32, bool, error) {
	if !InBounds(x, y, z) {
		return 0, false, ErrOutOfBounds
	}
	c, ok := g.colors[PosKey(x, y, z)]
	return c, ok, nil
}

// SetColor назначает цвет solid-вокселю.
func (g *Grid) SetColor(x, y, z int, color uint32) error {
	if !InBounds(x, y, z) {
		return ErrOutOfBounds
	}
	key := PosKey(x, y, z)
	if !g.solidKey(key) {
		return ErrNotSolid
	}
	g.colors[key] = color
	return nil
}

// EraseColor удаляет запись цвета, не трогая геометрию.
func (g *Grid) EraseColor(x, y, z int) error {
	if !InBounds(x, y, z) {
		return ErrOutOfBounds
	}
	delete(g.colors, PosKey(x, y, z))
	return nil
}

// SolidWrap — проверка solid для теневого луча: X и Y замыкаются по
// модулю 512, выход по Z в любую сторону считается воздухом.
func (g *Grid) SolidWrap(x, y, z int) bool {
	if z < 0 || z >= MapZ {
		return false
	}
	return g.solidKey(PosKey(x&(MapX-1), y&(MapY-1), z))
}

// DefaultFill приводит мир в начальное состояние декодера:
// весь объём solid, карта цветов пуста.
func (g *Grid) DefaultFill() {
	for i := range g.geometry {
		g.geometry[i] = ^uint64(0)
	}
	g.colors = make(map[uint32]uint32)
}

// Clone возвращает глубокую копию мира.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		geometry: make([]uint64, len(g.geometry)),
		colors:   make(map[uint32]uint32, len(g.colors)),
	}
	copy(c.geometry, g.geometry)
	for k, v := range g.colors {
		c.colors[k] = v
	}
	return c
}

// SolidCount возвращает число solid-вокселей.
func (g *Grid) SolidCount() int {
	n := 0
	for _, w := range g.geometry {
		n += bits.OnesCount64(w)
	}
	return n
}

// ColorCount возвращает число вокселей с явно заданным цветом.
func (g *Grid) ColorCount() int {
	return len(g.colors)
}

// colorOrDefault отдаёт цвет для записи в поток.
func (g *Grid) colorOrDefault(key uint32) uint32 {
	if c, ok := g.colors[key]; ok {
		return c
	}
	return DefaultColor
}
