package djb

import (
	"encoding/binary"
	"hash"
)

// X33x is Bernstein's "improved" hash: h = h*33 ^ c. XOR spreads each byte
// over more bits than add, so X33x("Ez") and X33x("FY") no longer collide.
type X33x struct {
	salt uint64
	h    uint64
}

// NewX33x returns an X33x seeded with DefaultSalt.
func NewX33x() *X33x {
	return NewX33xWithSalt(DefaultSalt)
}

// NewX33xWithSalt returns an X33x seeded with s.
func NewX33xWithSalt(s uint64) *X33x {
	return &X33x{salt: s, h: s}
}

func (d *X33x) Write(p []byte) (int, error) {
	d.h = xor64(d.h, p)
	return len(p), nil
}

func (d *X33x) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33x) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint64(in, d.h)
}

func (d *X33x) Sum64() uint64 {
	return d.h
}

func (d *X33x) Reset() {
	d.h = d.salt
}

func (d *X33x) Size() int {
	return 8
}

func (d *X33x) BlockSize() int {
	return 1
}

func (d *X33x) Salt() uint64 {
	return d.salt
}

func (d *X33x) Algorithm() Algorithm {
	return AlgX33x
}

func (d *X33x) MarshalBinary() ([]byte, error) {
	return marshal64(magicX33x, d.salt, d.h), nil
}

func (d *X33x) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal64(magicX33x, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

// X33xU32 is X33x with a 32-bit running state.
type X33xU32 struct {
	salt uint32
	h    uint32
}

// NewX33xU32 returns an X33xU32 seeded with DefaultSalt.
func NewX33xU32() *X33xU32 {
	return NewX33xU32WithSalt(DefaultSalt)
}

// NewX33xU32WithSalt returns an X33xU32 seeded with s.
func NewX33xU32WithSalt(s uint32) *X33xU32 {
	return &X33xU32{salt: s, h: s}
}

func (d *X33xU32) Write(p []byte) (int, error) {
	d.h = xor32(d.h, p)
	return len(p), nil
}

func (d *X33xU32) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33xU32) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.Sum32())
}

func (d *X33xU32) Sum32() uint32 {
	return d.h
}

func (d *X33xU32) Sum64() uint64 {
	return uint64(d.Sum32())
}

func (d *X33xU32) Reset() {
	d.h = d.salt
}

func (d *X33xU32) Size() int {
	return 4
}

func (d *X33xU32) BlockSize() int {
	return 1
}

func (d *X33xU32) Salt() uint64 {
	return uint64(d.salt)
}

func (d *X33xU32) Algorithm() Algorithm {
	return AlgX33xU32
}

func (d *X33xU32) MarshalBinary() ([]byte, error) {
	return marshal32(magicX33xU32, d.salt, d.h), nil
}

func (d *X33xU32) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal32(magicX33xU32, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

var (
	_ hash.Hash64 = (*X33x)(nil)
	_ Hasher      = (*X33x)(nil)
	_ hash.Hash32 = (*X33xU32)(nil)
	_ Hasher      = (*X33xU32)(nil)
)
