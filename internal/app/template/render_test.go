package template

import (
	"strings"
	"testing"

	"github.com/aalvaropc/djbhash/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("release-{{date}}", map[string]string{"date": "20250102"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "release-20250102" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ algo }}/{{salt}}", map[string]string{
		"algo": "x33a",
		"salt": "5381",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x33a/5381" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringNoPlaceholders(t *testing.T) {
	out, err := RenderString("plain", nil)
	if err != nil || out != "plain" {
		t.Fatalf("got %q, %v", out, err)
	}
	out, err = RenderString("", nil)
	if err != nil || out != "" {
		t.Fatalf("got %q, %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	vars := map[string]string{"salt": "1", "algo": "x33a"}
	cases := []struct {
		in   string
		want string
	}{
		{"{{name}}", `unknown variable "name" (have algo, salt)`},
		{"a {{algo", "unclosed"},
		{"{{  }}", "empty"},
	}
	for _, c := range cases {
		_, err := RenderString(c.in, vars)
		if err == nil {
			t.Fatalf("%q: expected error", c.in)
		}
		if !domain.IsKind(err, domain.KindInvalidInput) {
			t.Fatalf("%q: expected invalid_input, got %v", c.in, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%q: expected %q in %v", c.in, c.want, err)
		}
	}
}
