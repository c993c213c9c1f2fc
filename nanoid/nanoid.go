// Package nanoid produces 21-character URL-safe identifiers, either from
// crypto/rand (New) or deterministically from a generation context (Gen).
package nanoid

import (
	"crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/magaliet/genything/gen"
)

// Size is the length of every ID.
const Size = 21

// 64 characters so each one is exactly 6 bits.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

const (
	bytesPerID   = 16 // 21 chars × 6 bits = 126 bits
	poolBufSize  = bytesPerID * 128
	poolBufCount = poolBufSize / bytesPerID
)

type randomBuffer struct {
	data  [poolBufSize]byte
	index int
}

func (b *randomBuffer) fill() {
	if _, err := rand.Read(b.data[:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}
	b.index = 0
}

var bufferPool = sync.Pool{
	New: func() any {
		buf := &randomBuffer{}
		buf.fill()
		return buf
	},
}

// New returns a cryptographically random ID.
func New() string {
	buf := bufferPool.Get().(*randomBuffer)

	var raw [bytesPerID]byte
	offset := buf.index * bytesPerID
	copy(raw[:], buf.data[offset:offset+bytesPerID])

	buf.index++
	if buf.index >= poolBufCount {
		buf.fill()
	}
	bufferPool.Put(buf)

	return encode(raw)
}

// Gen draws IDs from the context's random source, so the same seed gives
// the same IDs.
func Gen() gen.Generator[string] {
	return gen.New(func(ctx gen.Context) (string, gen.Context) {
		var raw [bytesPerID]byte
		hi, ctx := ctx.Next()
		lo, ctx := ctx.Next()
		binary.LittleEndian.PutUint64(raw[:8], hi)
		binary.LittleEndian.PutUint64(raw[8:], lo)
		return encode(raw), ctx
	})
}

// encode packs 16 bytes into 21 characters. Every 3 bytes give 4
// characters; the last byte gives one.
func encode(raw [bytesPerID]byte) string {
	var out [Size]byte
	for g := range 5 {
		b0, b1, b2 := raw[3*g], raw[3*g+1], raw[3*g+2]
		out[4*g] = alphabet[b0&63]
		out[4*g+1] = alphabet[(b0>>6|b1<<2)&63]
		out[4*g+2] = alphabet[(b1>>4|b2<<4)&63]
		out[4*g+3] = alphabet[b2>>2]
	}
	out[20] = alphabet[raw[15]&63]
	return string(out[:])
}
