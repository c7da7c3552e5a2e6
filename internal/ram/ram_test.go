package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAM_ReadWrite(t *testing.T) {
	r := NewRAM()

	assert.Equal(t, uint8(0), r.Read(0x1234), "fresh memory reads as zero")

	r.Write(0x0000, 0x11)
	r.Write(0xFFFF, 0x22)
	assert.Equal(t, uint8(0x11), r.Read(0x0000))
	assert.Equal(t, uint8(0x22), r.Read(0xFFFF))

	r.Clear()
	assert.Equal(t, uint8(0), r.Read(0xFFFF))
}

func TestRAM_Load(t *testing.T) {
	t.Run("origin", func(t *testing.T) {
		r := NewRAM()
		require.NoError(t, r.Load(0x0100, []byte{0x3E, 0x05}))
		assert.Equal(t, uint8(0x3E), r.Read(0x0100))
		assert.Equal(t, uint8(0x05), r.Read(0x0101))
		assert.Equal(t, uint8(0x00), r.Read(0x0000))
	})
	t.Run("fills to the end", func(t *testing.T) {
		r := NewRAM()
		require.NoError(t, r.Load(0xFFFE, []byte{0xAA, 0xBB}))
		assert.Equal(t, uint8(0xBB), r.Read(0xFFFF))
	})
	t.Run("too large", func(t *testing.T) {
		r := NewRAM()
		err := r.Load(0xFFFF, []byte{0x00, 0x00})
		assert.ErrorIs(t, err, ErrProgramTooLarge)
	})
	t.Run("full address space", func(t *testing.T) {
		r := NewRAM()
		require.NoError(t, r.Load(0, make([]byte, Size)))
	})
}
