package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderSplitFeeding(t *testing.T) {
	f1 := EncodeFrame(0x00, []byte("hello"))
	f2 := EncodeFrame(0x01, []byte{1, 2, 3})
	all := append(append([]byte{}, f1...), f2...)

	// Feed byte-by-byte; no frame should surface before its last byte.
	d := NewDecoder(0)
	var got []Frame
	for i, b := range all {
		d.Feed([]byte{b})
		for {
			fr, ok, err := d.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, fr)
		}
		if i < len(f1)-1 {
			assert.Empty(t, got, "frame observed before its last byte arrived")
		}
	}

	require.Len(t, got, 2)
	assert.EqualValues(t, 0x00, got[0].PacketID)
	assert.Equal(t, []byte("hello"), got[0].Payload)
	assert.EqualValues(t, 0x01, got[1].PacketID)
	assert.Equal(t, []byte{1, 2, 3}, got[1].Payload)
}

func TestDecoderRandomSplits(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	frames := [][]byte{
		EncodeFrame(0, []byte("a")),
		EncodeFrame(1, []byte("bb")),
		EncodeFrame(300, make([]byte, 50)),
	}
	var all []byte
	for _, f := range frames {
		all = append(all, f...)
	}

	d := NewDecoder(0)
	var got []Frame
	for len(all) > 0 {
		n := 1 + rnd.Intn(len(all))
		d.Feed(all[:n])
		all = all[n:]
		for {
			fr, ok, err := d.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			got = append(got, fr)
		}
	}
	require.Len(t, got, len(frames))
}

func TestDecoderOversizedFrame(t *testing.T) {
	d := NewDecoder(16)
	frame := EncodeFrame(0, make([]byte, 100))
	d.Feed(frame)
	_, _, err := d.Next()
	require.ErrorIs(t, err, ErrFrameTooLarge)
}
