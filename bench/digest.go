package bench

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/labbench/matrix"
	"github.com/katalvlaran/labbench/maze"
)

// digestMatrix is the BLAKE2b-256 of m's elements in row-major order, each
// as the little-endian IEEE-754 bits of its real then imaginary part.
// Equal digests mean bitwise-equal products.
func digestMatrix(m *matrix.Dense) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// only a key longer than 64 bytes fails
		panic(err)
	}
	var buf [16]byte
	for _, v := range m.Data() {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(imag(v)))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}

// digestGrid is the BLAKE2b-256 of g's text rendering.
func digestGrid(g *maze.Grid) string {
	sum := blake2b.Sum256([]byte(g.String()))
	return hex.EncodeToString(sum[:])
}
