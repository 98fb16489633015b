// Package checksumfile reads and writes checksum listings.
//
// Two line forms are supported, mirroring the coreutils sum tools:
//
//	00000000005973a4  path/to/file          (GNU form)
//	X33A (path/to/file) = 00000000005973a4  (BSD tag form)
//
// The GNU form carries no algorithm name, so the caller's default applies.
// Blank lines and lines starting with '#' are ignored.
package checksumfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

var tagLine = regexp.MustCompile(`^([A-Za-z0-9_-]+) \((.*)\) = ([0-9A-Fa-f]+)$`)

// FormatLine renders d as a single checksum line without a trailing newline.
func FormatLine(d domain.Digest, tag bool) string {
	if tag {
		return fmt.Sprintf("%s (%s) = %s", strings.ToUpper(d.Algorithm.String()), d.Source, d.Hex())
	}
	return fmt.Sprintf("%s  %s", d.Hex(), d.Source)
}

// Write emits one line per successful digest. Failed digests are skipped.
func Write(w io.Writer, digests []domain.Digest, tag bool) error {
	bw := bufio.NewWriter(w)
	for _, d := range digests {
		if d.Failed() {
			continue
		}
		if _, err := bw.WriteString(FormatLine(d, tag) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads checksum lines from r. path is only used in error messages.
// Entries carry DefaultSalt; callers override Salt when hashing with another.
func Parse(r io.Reader, path string, def djb.Algorithm) ([]domain.CheckEntry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var out []domain.CheckEntry
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseLine(line, def)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "checksumfile.parse",
				Kind: domain.KindInvalidInput,
				Path: path,
				Err:  fmt.Errorf("line %d: %w", n, err),
			}
		}
		entry.Line = n
		entry.Salt = djb.DefaultSalt
		out = append(out, entry)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "checksumfile.read", Kind: domain.KindExecution, Path: path, Err: err}
	}
	if len(out) == 0 {
		return nil, &domain.OpError{
			Op:   "checksumfile.parse",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  errors.New("no checksum lines found"),
		}
	}
	return out, nil
}

func parseLine(line string, def djb.Algorithm) (domain.CheckEntry, error) {
	if m := tagLine.FindStringSubmatch(line); m != nil {
		alg, err := djb.ParseAlgorithm(m[1])
		if err == nil {
			v, err := parseHex(m[3], alg)
			if err != nil {
				return domain.CheckEntry{}, err
			}
			return domain.CheckEntry{Source: m[2], Algorithm: alg, Expected: v}, nil
		}
	}

	sp := strings.IndexByte(line, ' ')
	if sp <= 0 || sp+1 >= len(line) {
		return domain.CheckEntry{}, errors.New("expected \"<hex>  <path>\"")
	}
	rest := line[sp+1:]
	if rest[0] != ' ' && rest[0] != '*' {
		return domain.CheckEntry{}, errors.New("expected two spaces or \" *\" after the checksum")
	}
	name := rest[1:]
	if name == "" {
		return domain.CheckEntry{}, errors.New("missing path")
	}

	v, err := parseHex(line[:sp], def)
	if err != nil {
		return domain.CheckEntry{}, err
	}
	return domain.CheckEntry{Source: name, Algorithm: def, Expected: v}, nil
}

func parseHex(s string, alg djb.Algorithm) (uint64, error) {
	want := alg.Bits() / 4
	if len(s) != want {
		return 0, fmt.Errorf("checksum %q has %d hex digits, %s needs %d", s, len(s), alg, want)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("checksum %q is not hex: %w", s, err)
	}
	return v, nil
}
