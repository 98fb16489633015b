package checksumfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

func TestFormatLine(t *testing.T) {
	d := domain.Digest{Source: "a.txt", Algorithm: djb.AlgX33aU32, Bits: 32, Value: 5862308}

	if got := FormatLine(d, false); got != "005973a4  a.txt" {
		t.Fatalf("unexpected GNU line %q", got)
	}
	if got := FormatLine(d, true); got != "X33A-U32 (a.txt) = 005973a4" {
		t.Fatalf("unexpected tag line %q", got)
	}
}

func TestWriteSkipsFailed(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []domain.Digest{
		{Source: "ok", Algorithm: djb.AlgX33a, Bits: 64, Value: 5381},
		{Source: "bad", Error: "boom"},
	}, false)
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != "0000000000001505  ok\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestParse_RoundTrip(t *testing.T) {
	digests := []domain.Digest{
		{Source: "a.txt", Algorithm: djb.AlgX33a, Bits: 64, Value: 7572149288326856},
		{Source: "dir/with space.txt", Algorithm: djb.AlgX33a, Bits: 64, Value: 5381},
	}
	for _, tag := range []bool{false, true} {
		var buf bytes.Buffer
		if err := Write(&buf, digests, tag); err != nil {
			t.Fatal(err)
		}

		entries, err := Parse(&buf, "sums.txt", djb.AlgX33a)
		if err != nil {
			t.Fatalf("Parse(tag=%v) error: %v", tag, err)
		}
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		for i, e := range entries {
			if e.Source != digests[i].Source || e.Expected != digests[i].Value || e.Algorithm != djb.AlgX33a {
				t.Fatalf("entry %d mismatch: %+v", i, e)
			}
		}
	}
}

func TestParse_TagOverridesDefault(t *testing.T) {
	in := "# comment\n\nX33X-U32 (b.bin) = 0059701a\r\n005973a4 *c.bin\n"
	entries, err := Parse(strings.NewReader(in), "sums", djb.AlgX33aU32)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Algorithm != djb.AlgX33xU32 || entries[0].Expected != 5861402 || entries[0].Line != 3 {
		t.Fatalf("unexpected tag entry %+v", entries[0])
	}
	if entries[1].Algorithm != djb.AlgX33aU32 || entries[1].Source != "c.bin" || entries[1].Line != 4 {
		t.Fatalf("unexpected GNU entry %+v", entries[1])
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"width", "1505  a.txt\n", "line 1"},
		{"not hex", "zzzzzzzzzzzzzzzz  a.txt\n", "not hex"},
		{"single space", "0000000000001505 a.txt\n", "two spaces"},
		{"no path", "0000000000001505\n", "expected"},
		{"empty", "# only comments\n", "no checksum lines"},
	}
	for _, c := range cases {
		_, err := Parse(strings.NewReader(c.in), "sums.txt", djb.AlgX33a)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("%s: expected KindInvalidInput, got %v", c.name, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%s: expected %q in %v", c.name, c.want, err)
		}
		if !strings.Contains(err.Error(), "sums.txt") {
			t.Fatalf("%s: expected path in error, got %v", c.name, err)
		}
	}
}
