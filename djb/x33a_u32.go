package djb

import (
	"encoding/binary"
	"hash"
)

// X33aU32 is X33a with a 32-bit running state. It is often faster than the
// 64-bit form and enough for small tables.
type X33aU32 struct {
	salt uint32
	h    uint32
}

// NewX33aU32 returns an X33aU32 seeded with DefaultSalt.
func NewX33aU32() *X33aU32 {
	return NewX33aU32WithSalt(DefaultSalt)
}

// NewX33aU32WithSalt returns an X33aU32 seeded with s.
func NewX33aU32WithSalt(s uint32) *X33aU32 {
	return &X33aU32{salt: s, h: s}
}

func (d *X33aU32) Write(p []byte) (int, error) {
	d.h = add32(d.h, p)
	return len(p), nil
}

func (d *X33aU32) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33aU32) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.Sum32())
}

func (d *X33aU32) Sum32() uint32 {
	return d.h
}

func (d *X33aU32) Sum64() uint64 {
	return uint64(d.Sum32())
}

func (d *X33aU32) Reset() {
	d.h = d.salt
}

func (d *X33aU32) Size() int {
	return 4
}

func (d *X33aU32) BlockSize() int {
	return 1
}

func (d *X33aU32) Salt() uint64 {
	return uint64(d.salt)
}

func (d *X33aU32) Algorithm() Algorithm {
	return AlgX33aU32
}

func (d *X33aU32) MarshalBinary() ([]byte, error) {
	return marshal32(magicX33aU32, d.salt, d.h), nil
}

func (d *X33aU32) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal32(magicX33aU32, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

// X33aU32Php is the hash PHP uses for its hashtable keys: X33aU32 with the
// high bit of the output set so that no key ever hashes to zero.
type X33aU32Php struct {
	salt uint32
	h    uint32
}

// NewX33aU32Php returns an X33aU32Php seeded with DefaultSalt.
func NewX33aU32Php() *X33aU32Php {
	return NewX33aU32PhpWithSalt(DefaultSalt)
}

// NewX33aU32PhpWithSalt returns an X33aU32Php seeded with s.
func NewX33aU32PhpWithSalt(s uint32) *X33aU32Php {
	return &X33aU32Php{salt: s, h: s}
}

func (d *X33aU32Php) Write(p []byte) (int, error) {
	d.h = add32(d.h, p)
	return len(p), nil
}

func (d *X33aU32Php) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33aU32Php) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint32(in, d.Sum32())
}

func (d *X33aU32Php) Sum32() uint32 {
	return d.h | highBit32
}

func (d *X33aU32Php) Sum64() uint64 {
	return uint64(d.Sum32())
}

func (d *X33aU32Php) Reset() {
	d.h = d.salt
}

func (d *X33aU32Php) Size() int {
	return 4
}

func (d *X33aU32Php) BlockSize() int {
	return 1
}

func (d *X33aU32Php) Salt() uint64 {
	return uint64(d.salt)
}

func (d *X33aU32Php) Algorithm() Algorithm {
	return AlgX33aU32Php
}

func (d *X33aU32Php) MarshalBinary() ([]byte, error) {
	return marshal32(magicX33aU32Php, d.salt, d.h), nil
}

func (d *X33aU32Php) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal32(magicX33aU32Php, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

var (
	_ hash.Hash32 = (*X33aU32)(nil)
	_ Hasher      = (*X33aU32)(nil)
	_ hash.Hash32 = (*X33aU32Php)(nil)
	_ Hasher      = (*X33aU32Php)(nil)
)
