package netmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCacheAddGet(t *testing.T) {
	mc := NewMapCache(2)

	mc.Add("AAAA0001", []byte{1, 2, 3})
	data, ok := mc.Get("AAAA0001")
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, data)

	_, ok = mc.Get("FFFF0000")
	assert.False(t, ok)
}

func TestMapCacheEvictsOldest(t *testing.T) {
	mc := NewMapCache(2)

	mc.Add("A", []byte{1})
	mc.Add("B", []byte{2})
	mc.Add("C", []byte{3})

	assert.False(t, mc.Has("A"), "самая старая карта вытесняется")
	assert.True(t, mc.Has("B"))
	assert.True(t, mc.Has("C"))
}

func TestMapCacheOverwriteKeepsOrder(t *testing.T) {
	mc := NewMapCache(2)

	mc.Add("A", []byte{1})
	mc.Add("B", []byte{2})
	mc.Add("A", []byte{9}) // перезапись не должна плодить записей

	data, ok := mc.Get("A")
	assert.True(t, ok)
	assert.Equal(t, []byte{9}, data)

	mc.Add("C", []byte{3})
	assert.False(t, mc.Has("A"), "порядок вытеснения считается по первому добавлению")
	assert.True(t, mc.Has("B"))
	assert.True(t, mc.Has("C"))
}

func TestMapCacheReset(t *testing.T) {
	mc := NewMapCache(1)
	mc.Add("A", []byte{1})
	mc.Reset()
	assert.False(t, mc.Has("A"))

	// Кеш остаётся рабочим после сброса
	mc.Add("B", []byte{2})
	assert.True(t, mc.Has("B"))
}
