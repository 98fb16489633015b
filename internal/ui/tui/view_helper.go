package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/checksumfile"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderManifest(m domain.Manifest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:      %s\n", m.Name)
	fmt.Fprintf(&b, "ID:        %s\n", m.ID)
	fmt.Fprintf(&b, "Created:   %s\n", m.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Algorithm: %s (salt %d)\n\n", m.Algorithm, m.Salt)

	if len(m.Entries) == 0 {
		b.WriteString("(no entries)\n")
		return b.String()
	}
	for _, d := range m.Entries {
		b.WriteString(clampString(checksumfile.FormatLine(d, false), 120))
		b.WriteString("\n")
	}
	return b.String()
}
