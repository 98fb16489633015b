package domain

import (
	"fmt"
	"time"

	"github.com/aalvaropc/djbhash/djb"
)

// Digest is the hash of a single source.
type Digest struct {
	Source    string        `json:"source"`
	Algorithm djb.Algorithm `json:"algorithm"`
	Salt      uint64        `json:"salt"`
	Bits      int           `json:"bits"`
	Value     uint64        `json:"value"`
	Bytes     int64         `json:"bytes"`
	Error     string        `json:"error,omitempty"`
}

// Hex renders the value zero-padded to the algorithm width.
func (d Digest) Hex() string {
	return FormatHex(d.Value, d.Bits)
}

func (d Digest) Failed() bool {
	return d.Error != ""
}

// FormatHex renders v as lowercase hex, zero-padded to bits/4 digits.
func FormatHex(v uint64, bits int) string {
	if bits <= 0 {
		bits = 64
	}
	return fmt.Sprintf("%0*x", bits/4, v)
}

// Manifest is a persisted set of digests produced by one invocation.
type Manifest struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	Algorithm djb.Algorithm `json:"algorithm"`
	Salt      uint64        `json:"salt"`
	Entries   []Digest      `json:"entries"`
}

// ManifestRef is a lightweight listing entry for a saved manifest.
type ManifestRef struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Entries   int       `json:"entries"`
}

// CheckEntry is one expected digest, typically a line of a checksum file.
type CheckEntry struct {
	Source    string
	Algorithm djb.Algorithm
	Salt      uint64
	Expected  uint64
	Line      int // 0 when the entry did not come from a file
}

type CheckStatus string

const (
	CheckOK       CheckStatus = "ok"
	CheckMismatch CheckStatus = "mismatch"
	CheckMissing  CheckStatus = "missing"
	CheckError    CheckStatus = "error"
)

// CheckResult is the outcome of re-hashing one CheckEntry.
type CheckResult struct {
	Entry   CheckEntry
	Actual  uint64
	Status  CheckStatus
	Message string
}

// CheckSummary counts results by status.
type CheckSummary struct {
	OK       int
	Mismatch int
	Missing  int
	Errors   int
}

func (s CheckSummary) Failed() int {
	return s.Mismatch + s.Missing + s.Errors
}

func Summarize(results []CheckResult) CheckSummary {
	var s CheckSummary
	for _, r := range results {
		switch r.Status {
		case CheckOK:
			s.OK++
		case CheckMismatch:
			s.Mismatch++
		case CheckMissing:
			s.Missing++
		default:
			s.Errors++
		}
	}
	return s
}
