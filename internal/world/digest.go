package world

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"sort"
)

// Digest считает CRC32 (IEEE) по канонической сериализации мира и
// возвращает 8 символов верхнего регистра hex.
//
// Каноническая форма: слова битовой геометрии в порядке ключей,
// little-endian, затем пары (ключ, цвет) по возрастанию ключа, каждая
// как два little-endian uint32. Это сознательный разрыв совместимости
// с эталонным хешем по раскладке памяти — тот зависит от паддинга и
// адресов аллокатора и не переносим.
func Digest(g *Grid) string {
	crc := crc32.NewIEEE()

	var word [8]byte
	for _, w := range g.geometry {
		binary.LittleEndian.PutUint64(word[:], w)
		crc.Write(word[:])
	}

	keys := make([]uint32, 0, len(g.colors))
	for k := range g.colors {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var pair [8]byte
	for _, k := range keys {
		binary.LittleEndian.PutUint32(pair[:4], k)
		binary.LittleEndian.PutUint32(pair[4:], g.colors[k])
		crc.Write(pair[:])
	}

	return fmt.Sprintf("%08X", crc.Sum32())
}
