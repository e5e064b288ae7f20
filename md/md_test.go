package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsFor(t *testing.T) {
	assert.EqualValues(t, 0, WordsFor(0))
	assert.EqualValues(t, 1, WordsFor(1))
	assert.EqualValues(t, 1, WordsFor(63))
	assert.EqualValues(t, 1, WordsFor(64))
	assert.EqualValues(t, 2, WordsFor(65))
	assert.EqualValues(t, 1024, WordsFor(2048*32))
	assert.EqualValues(t, 1025, WordsFor(2048*32+1))
}

func TestWordIndex(t *testing.T) {
	w, b := WordIndex(0)
	assert.EqualValues(t, 0, w)
	assert.EqualValues(t, 0, b)
	w, b = WordIndex(70)
	assert.EqualValues(t, 1, w)
	assert.EqualValues(t, 6, b)
}

func TestLowMask(t *testing.T) {
	assert.EqualValues(t, 0, LowMask(0))
	assert.EqualValues(t, 1, LowMask(1))
	assert.EqualValues(t, uint64(0x7fffffffffffffff), LowMask(63))
	assert.EqualValues(t, ^uint64(0), LowMask(64))
}
