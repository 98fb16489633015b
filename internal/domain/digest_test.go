package domain

import "testing"

func TestDigestHexPadsToWidth(t *testing.T) {
	cases := []struct {
		d    Digest
		want string
	}{
		{Digest{Value: 5381, Bits: 64}, "0000000000001505"},
		{Digest{Value: 5381, Bits: 32}, "00001505"},
		{Digest{Value: 2153345956, Bits: 32}, "805973a4"},
		{Digest{Value: 1, Bits: 0}, "0000000000000001"},
	}
	for _, c := range cases {
		if got := c.d.Hex(); got != c.want {
			t.Errorf("Hex(%d, %d) = %q, want %q", c.d.Value, c.d.Bits, got, c.want)
		}
	}
}

func TestDigestFailed(t *testing.T) {
	if (Digest{}).Failed() {
		t.Fatalf("expected zero digest not failed")
	}
	if !(Digest{Error: "boom"}).Failed() {
		t.Fatalf("expected digest with error to be failed")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]CheckResult{
		{Status: CheckOK},
		{Status: CheckOK},
		{Status: CheckMismatch},
		{Status: CheckMissing},
		{Status: CheckError},
	})
	if s.OK != 2 || s.Mismatch != 1 || s.Missing != 1 || s.Errors != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Failed() != 3 {
		t.Fatalf("expected 3 failed, got %d", s.Failed())
	}
}
