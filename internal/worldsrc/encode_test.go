package worldsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackEntriesSingleValue(t *testing.T) {
	values := make([]int32, BlocksPerSection)
	out := encodePalettedContainer(values, blockMinBits, blockMaxIndirect, 15)
	require.NotEmpty(t, out)
	assert.Equal(t, byte(0), out[0])
}

func TestPackEntriesIndirectBitWidthWithinBounds(t *testing.T) {
	values := make([]int32, BlocksPerSection)
	for i := range values {
		values[i] = int32(i % 3)
	}
	out := encodePalettedContainer(values, blockMinBits, blockMaxIndirect, 15)
	bitsPerEntry := int(out[0])
	assert.True(t, bitsPerEntry >= blockMinBits && bitsPerEntry <= blockMaxIndirect)
}

func TestPackEntriesDirectFallback(t *testing.T) {
	// More distinct values than 2^blockMaxIndirect forces direct encoding.
	values := make([]int32, BlocksPerSection)
	for i := range values {
		values[i] = int32(i)
	}
	out := encodePalettedContainer(values, blockMinBits, blockMaxIndirect, 15)
	assert.Equal(t, byte(15), out[0])
}

func TestCeilLog2(t *testing.T) {
	assert.Equal(t, 0, ceilLog2(1))
	assert.Equal(t, 1, ceilLog2(2))
	assert.Equal(t, 2, ceilLog2(3))
	assert.Equal(t, 2, ceilLog2(4))
	assert.Equal(t, 3, ceilLog2(5))
}

func TestEncodeSectionNoPanic(t *testing.T) {
	var sec Section
	for i := range sec.BlockStates {
		sec.BlockStates[i] = int32(i % 5)
	}
	out := EncodeSection(sec, 15, 6)
	assert.NotEmpty(t, out)
}
