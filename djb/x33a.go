package djb

import (
	"encoding/binary"
	"hash"
)

// X33a is the 64-bit form of Bernstein's original hash: h = h*33 + c.
//
// X33a("Ez") and X33a("FY") both hash to 5862308; with add as the mixing step
// such collisions are easy to construct.
type X33a struct {
	salt uint64
	h    uint64
}

// NewX33a returns an X33a seeded with DefaultSalt.
func NewX33a() *X33a {
	return NewX33aWithSalt(DefaultSalt)
}

// NewDjbx33a is the historical name of NewX33a.
func NewDjbx33a() *X33a {
	return NewX33a()
}

// NewX33aWithSalt returns an X33a seeded with s.
func NewX33aWithSalt(s uint64) *X33a {
	return &X33a{salt: s, h: s}
}

func (d *X33a) Write(p []byte) (int, error) {
	d.h = add64(d.h, p)
	return len(p), nil
}

func (d *X33a) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33a) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint64(in, d.h)
}

func (d *X33a) Sum64() uint64 {
	return d.h
}

func (d *X33a) Reset() {
	d.h = d.salt
}

func (d *X33a) Size() int {
	return 8
}

func (d *X33a) BlockSize() int {
	return 1
}

func (d *X33a) Salt() uint64 {
	return d.salt
}

func (d *X33a) Algorithm() Algorithm {
	return AlgX33a
}

func (d *X33a) MarshalBinary() ([]byte, error) {
	return marshal64(magicX33a, d.salt, d.h), nil
}

func (d *X33a) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal64(magicX33a, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

// X33aPhp is X33a with the high bit of the output always set. The running
// state is left untouched so further writes continue from the true value.
type X33aPhp struct {
	salt uint64
	h    uint64
}

// NewX33aPhp returns an X33aPhp seeded with DefaultSalt.
func NewX33aPhp() *X33aPhp {
	return NewX33aPhpWithSalt(DefaultSalt)
}

// NewX33aPhpWithSalt returns an X33aPhp seeded with s.
func NewX33aPhpWithSalt(s uint64) *X33aPhp {
	return &X33aPhp{salt: s, h: s}
}

func (d *X33aPhp) Write(p []byte) (int, error) {
	d.h = add64(d.h, p)
	return len(p), nil
}

func (d *X33aPhp) WriteString(s string) (int, error) {
	return d.Write([]byte(s))
}

func (d *X33aPhp) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint64(in, d.Sum64())
}

func (d *X33aPhp) Sum64() uint64 {
	return d.h | highBit64
}

func (d *X33aPhp) Reset() {
	d.h = d.salt
}

func (d *X33aPhp) Size() int {
	return 8
}

func (d *X33aPhp) BlockSize() int {
	return 1
}

func (d *X33aPhp) Salt() uint64 {
	return d.salt
}

func (d *X33aPhp) Algorithm() Algorithm {
	return AlgX33aPhp
}

func (d *X33aPhp) MarshalBinary() ([]byte, error) {
	return marshal64(magicX33aPhp, d.salt, d.h), nil
}

func (d *X33aPhp) UnmarshalBinary(b []byte) error {
	salt, h, err := unmarshal64(magicX33aPhp, b)
	if err != nil {
		return err
	}
	d.salt, d.h = salt, h
	return nil
}

var (
	_ hash.Hash64 = (*X33a)(nil)
	_ Hasher      = (*X33a)(nil)
	_ hash.Hash64 = (*X33aPhp)(nil)
	_ Hasher      = (*X33aPhp)(nil)
)
