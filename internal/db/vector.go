package db

import (
	"encoding/binary"
	"fmt"
	"math"
)

const float32Size = 4

// EncodeVector packs v as little-endian float32, the blob layout of an FT VECTOR FLOAT32 field.
func EncodeVector(v []float32) []byte {
	out := make([]byte, 0, len(v)*float32Size)
	for _, f := range v {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}

// DecodeVector is the inverse of EncodeVector.
func DecodeVector(blob []byte) ([]float32, error) {
	if len(blob)%float32Size != 0 {
		return nil, fmt.Errorf("vector blob of %d bytes is not whole float32s", len(blob))
	}
	v := make([]float32, 0, len(blob)/float32Size)
	for off := 0; off < len(blob); off += float32Size {
		v = append(v, math.Float32frombits(binary.LittleEndian.Uint32(blob[off:])))
	}
	return v, nil
}
