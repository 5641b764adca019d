package vec

// Vec2 представляет 2D координаты столбца карты
type Vec2 struct {
	X, Y int
}
