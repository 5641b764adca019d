package world

import "encoding/binary"

// LoadVXL материализует мир из потока столбцов формата .vxl.
// Столбцы идут в порядке Y, затем X; каждый столбец — цепочка span
// до терминатора (N == 0). Хвостовые байты после последнего столбца
// игнорируются.
func LoadVXL(data []byte) (*Grid, error) {
	g := NewGrid()
	g.DefaultFill()

	pos := 0
	for y := 0; y < MapY; y++ {
		for x := 0; x < MapX; x++ {
			if err := decodeColumn(g, x, y, data, &pos); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// decodeColumn разбирает один столбец, двигая pos по входу.
//
// Каждый span несёт верхние цвета своего solid-блока и, если span не
// последний, нижние цвета СЛЕДУЮЩЕГО span: их число выводится из длины
// чанка, а позиция — из байта air_start следующего заголовка.
func decodeColumn(g *Grid, x, y int, data []byte, pos *int) error {
	z := 0
	for {
		p := *pos
		if p+4 > len(data) {
			return &TruncatedVXLError{Offset: len(data)}
		}
		n := int(data[p])
		topStart := int(data[p+1])
		topEnd := int(data[p+2]) // включительно

		lenTop := topEnd - topStart + 1
		if lenTop < 0 {
			// topEnd == topStart-1 — легальный пустой прогон (столбец,
			// кончающийся воздухом); всё, что раньше — мусор.
			return &MalformedVXLError{Offset: p, Reason: "top run ends before it starts"}
		}
		if lenTop > 0 && topEnd >= MapZ {
			return &MalformedVXLError{Offset: p, Reason: "top run leaves the column"}
		}

		// Вырезаем воздух от курсора до начала верхнего прогона.
		for i := z; i < topStart && i < MapZ; i++ {
			g.setSolidKey(PosKey(x, y, i), false)
		}

		colorPos := p + 4
		if colorPos+4*lenTop > len(data) {
			return &TruncatedVXLError{Offset: len(data)}
		}
		for i := 0; i < lenTop; i++ {
			// На проводе B,G,R,A little-endian — в памяти ARGB хоста.
			g.colors[PosKey(x, y, topStart+i)] = binary.LittleEndian.Uint32(data[colorPos+4*i:])
		}

		if n == 0 {
			// Терминальный span: заголовок плюс его верхние цвета.
			*pos = p + 4*(lenTop+1)
			return nil
		}

		lenBottom := n - 1 - lenTop
		if lenBottom < 0 {
			return &MalformedVXLError{Offset: p, Reason: "chunk length shorter than top run"}
		}

		next := p + 4*n
		if next+4 > len(data) {
			return &TruncatedVXLError{Offset: len(data)}
		}

		airStart := int(data[next+3])
		bottomStart := airStart - lenBottom
		if bottomStart < 0 {
			return &MalformedVXLError{Offset: next, Reason: "negative bottom run start"}
		}
		if lenBottom > 0 && airStart > MapZ {
			return &MalformedVXLError{Offset: next, Reason: "bottom run leaves the column"}
		}

		bp := colorPos + 4*lenTop
		for i := 0; i < lenBottom; i++ {
			g.colors[PosKey(x, y, bottomStart+i)] = binary.LittleEndian.Uint32(data[bp+4*i:])
		}

		*pos = next
		z = airStart
	}
}
