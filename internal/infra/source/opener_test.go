package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/aalvaropc/djbhash/internal/domain"
)

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestOpen_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(p, []byte("Ez"), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := NewOpener().Open(context.Background(), p)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got := readAll(t, rc); got != "Ez" {
		t.Fatalf("expected Ez, got %q", got)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := NewOpener().Open(context.Background(), filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := NewOpener().Open(context.Background(), t.TempDir())
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestOpen_Stdin(t *testing.T) {
	o := NewOpener(WithStdin(strings.NewReader("from stdin")))
	rc, err := o.Open(context.Background(), Stdin)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got := readAll(t, rc); got != "from stdin" {
		t.Fatalf("unexpected stdin content %q", got)
	}
}

func TestOpen_StdinManyTimesConcurrently(t *testing.T) {
	body := strings.Repeat("Ez", 512<<10)
	o := NewOpener(WithStdin(strings.NewReader(body)))

	got := make([]string, 4)
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rc, err := o.Open(context.Background(), Stdin)
			if err != nil {
				t.Errorf("Open error: %v", err)
				return
			}
			defer rc.Close()
			b, err := io.ReadAll(rc)
			if err != nil {
				t.Errorf("read: %v", err)
				return
			}
			got[i] = string(b)
		}()
	}
	wg.Wait()

	for i, g := range got {
		if len(g) != len(body) || g != body {
			t.Fatalf("reader %d saw %d bytes, want %d", i, len(g), len(body))
		}
	}
}

func TestOpen_StdinReadError(t *testing.T) {
	o := NewOpener(WithStdin(failingReader{}))
	for i := 0; i < 2; i++ {
		_, err := o.Open(context.Background(), Stdin)
		if !domain.IsKind(err, domain.KindExecution) {
			t.Fatalf("open %d: expected KindExecution, got %v", i, err)
		}
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestOpen_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("FY"))
		case "/missing":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	o := NewOpener(WithHTTPClient(srv.Client()))

	rc, err := o.Open(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if got := readAll(t, rc); got != "FY" {
		t.Fatalf("expected FY, got %q", got)
	}

	_, err = o.Open(context.Background(), srv.URL+"/missing")
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound for 404, got %v", err)
	}

	_, err = o.Open(context.Background(), srv.URL+"/boom")
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution for 500, got %v", err)
	}
}

func TestIsURL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"http://x", true},
		{"HTTPS://x/y", true},
		{"ftp://x", false},
		{"./http", false},
		{"-", false},
	}
	for _, c := range cases {
		if got := IsURL(c.in); got != c.want {
			t.Errorf("IsURL(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
