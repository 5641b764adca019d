package world

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds возвращается аксессорами Grid при координатах вне мира.
var ErrOutOfBounds = errors.New("voxel coordinates out of bounds")

// ErrNotSolid возвращается при попытке назначить цвет воздуху.
var ErrNotSolid = errors.New("voxel is not solid")

// MalformedVXLError описывает противоречивый заголовок span:
// длина чанка короче верхнего цветового прогона, отрицательное начало
// нижнего прогона или индексы за пределами столбца.
type MalformedVXLError struct {
	Offset int
	Reason string
}

func (e *MalformedVXLError) Error() string {
	return fmt.Sprintf("malformed vxl data at offset %d: %s", e.Offset, e.Reason)
}

// TruncatedVXLError сообщает, что входные данные закончились до того,
// как были разобраны все 512·512 столбцов.
type TruncatedVXLError struct {
	Offset int
}

func (e *TruncatedVXLError) Error() string {
	return fmt.Sprintf("truncated vxl data at offset %d", e.Offset)
}
