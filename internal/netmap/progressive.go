package netmap

import (
	"bytes"
	"fmt"

	"github.com/annel0/vxl-engine/internal/logging"
	"github.com/annel0/vxl-engine/internal/world"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zlib"
)

// Уровень zlib-сжатия потока карты.
const CompressionLevel = zlib.BestCompression

// DefaultColumnsPerStep — столбцов, кодируемых на одну итерацию Read.
const DefaultColumnsPerStep = 2048

// Progressive отдаёт карту клиенту порциями: потоковый кодировщик
// world.MapGenerator прогоняется через zlib по мере чтения, поэтому
// полная несжатая карта в памяти не материализуется.
//
// При keepBacklog передача сохраняет уже отданные байты и может
// порождать Child-читателей для поздно подключившихся клиентов.
type Progressive struct {
	id             string
	gen            *world.MapGenerator
	comp           *zlib.Writer
	buf            bytes.Buffer
	columnsPerStep int

	keepBacklog bool
	backlog     []byte
	pos         int

	finished bool
}

// NewProgressive создаёт потоковую передачу над копией мира.
func NewProgressive(g *world.Grid, keepBacklog bool) (*Progressive, error) {
	p := &Progressive{
		id:             uuid.NewString(),
		gen:            world.NewMapGenerator(g),
		columnsPerStep: DefaultColumnsPerStep,
		keepBacklog:    keepBacklog,
	}
	comp, err := zlib.NewWriterLevel(&p.buf, CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания zlib-компрессора: %w", err)
	}
	p.comp = comp

	logging.Debug("🗺️ Передача карты %s начата", p.id)
	return p, nil
}

// ID возвращает идентификатор передачи (для логов и диагностики).
func (p *Progressive) ID() string { return p.id }

// SetColumnsPerStep задаёт размер порции кодирования (минимум 1).
func (p *Progressive) SetColumnsPerStep(columns int) {
	if columns > 0 {
		p.columnsPerStep = columns
	}
}

// Read возвращает до size сжатых байт, докодируя карту по мере
// необходимости. Пустой срез означает конец передачи.
func (p *Progressive) Read(size int) []byte {
	if size <= 0 {
		return nil
	}

	for p.buf.Len() < size && !p.finished {
		chunk := p.gen.Next(p.columnsPerStep)
		if len(chunk) > 0 {
			p.comp.Write(chunk)
		}
		if p.gen.Done() {
			p.comp.Close()
			p.finished = true
			logging.Debug("🗺️ Передача карты %s: кодирование завершено", p.id)
		}
	}

	n := size
	if p.buf.Len() < n {
		n = p.buf.Len()
	}
	out := make([]byte, n)
	p.buf.Read(out)

	if p.keepBacklog {
		p.backlog = append(p.backlog, out...)
		p.pos += n
	}
	return out
}

// DataLeft сообщает, остались ли невыданные байты.
func (p *Progressive) DataLeft() bool {
	return p.buf.Len() > 0 || !p.finished
}

// ReadAll докручивает передачу до конца и возвращает весь сжатый блоб.
func (p *Progressive) ReadAll() []byte {
	var all []byte
	for p.DataLeft() {
		all = append(all, p.Read(64*1024)...)
	}
	return all
}

// Child создаёт читателя, который повторяет уже отданные родителем
// байты с нулевой позиции. Доступно только при keepBacklog.
func (p *Progressive) Child() (*Child, error) {
	if !p.keepBacklog {
		return nil, fmt.Errorf("передача %s не хранит backlog", p.id)
	}
	return &Child{parent: p}, nil
}

// Child — зависимый читатель поверх backlog родительской передачи.
type Child struct {
	parent *Progressive
	pos    int
}

// Read возвращает до size байт с текущей позиции, при необходимости
// продвигая родительскую передачу.
func (c *Child) Read(size int) []byte {
	if size <= 0 {
		return nil
	}
	if c.pos+size > c.parent.pos {
		c.parent.Read(size)
	}
	end := c.pos + size
	if end > len(c.parent.backlog) {
		end = len(c.parent.backlog)
	}
	out := make([]byte, end-c.pos)
	copy(out, c.parent.backlog[c.pos:end])
	c.pos = end
	return out
}

// DataLeft сообщает, остались ли байты у родителя или в его backlog.
func (c *Child) DataLeft() bool {
	return c.parent.DataLeft() || c.pos < c.parent.pos
}
