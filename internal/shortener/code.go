package shortener

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
)

// CodeLength is the number of hex digits in a generated code.
const CodeLength = 16

// CodeGenerator derives a short code from a creation timestamp.
type CodeGenerator func(createdAt int64) string

// HexCode returns a 64-bit pseudo-random value rendered as 16 lowercase hex digits.
// The PCG stream is seeded by createdAt; the stream selector comes from crypto/rand
// so codes minted within the same second still differ.
func HexCode(createdAt int64) string {
	var stream [8]byte

	_, _ = crand.Read(stream[:])

	src := rand.NewPCG(uint64(createdAt), binary.BigEndian.Uint64(stream[:]))

	return FormatCode(src.Uint64())
}

// FormatCode renders v big-endian, two zero-padded hex digits per byte.
func FormatCode(v uint64) string {
	var b [8]byte

	binary.BigEndian.PutUint64(b[:], v)

	return hex.EncodeToString(b[:])
}
