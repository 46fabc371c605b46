package formats

import (
	"fmt"

	"github.com/anvil-engine/anvil/engine/systems"
)

// Bytecode parses .spv files into a little-endian word stream, the layout
// shader backends consume.
type Bytecode struct{}

func (Bytecode) Extension() string {
	return "spv"
}

func (Bytecode) Parse(b []byte, pool *systems.JobSystem) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("bytecode length %d is not a multiple of 4", len(b))
	}
	return bytesToBytecode(b), nil
}

func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	return byteCode
}
