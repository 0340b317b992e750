package images

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Checksum generates a deterministic checksum of a grid's dimensions and
// colors, used to verify idempotency and round trips.
//
// Arguments:
// - g: The grid to compute the checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	before := Checksum(g)
//	Negative(g)
//	Negative(g)
//	fmt.Println(before == Checksum(g)) // true
//
// ```
func Checksum(g *Grid) string {
	mustBeWellFormed(g)

	hash := md5.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(g.height))
	binary.LittleEndian.PutUint64(dims[8:], uint64(g.width))
	hash.Write(dims[:])

	row := make([]byte, 0, g.width*3)
	for r := 0; r < g.height; r++ {
		row = row[:0]
		for _, c := range g.pix[r*g.width : (r+1)*g.width] {
			row = append(row, c.R, c.G, c.B)
		}
		hash.Write(row)
	}
	return fmt.Sprintf("%x", hash.Sum(nil))
}
