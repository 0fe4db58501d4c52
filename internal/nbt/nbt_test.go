package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyCompound(t *testing.T) {
	assert.Equal(t, []byte{TagCompound, TagEnd}, EmptyCompound())
}

func TestTextComponent(t *testing.T) {
	got := TextComponent("hi")
	want := []byte{
		TagCompound,
		TagString, 0x00, 0x04, 't', 'e', 'x', 't', 0x00, 0x02, 'h', 'i',
		TagEnd,
	}
	assert.Equal(t, want, got)
}
