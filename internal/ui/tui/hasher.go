package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/djbhash/djb"
	"github.com/aalvaropc/djbhash/internal/domain"
)

type hashRow struct {
	alg   djb.Algorithm
	value uint64
	err   error
}

func (r hashRow) hex() string {
	return domain.FormatHex(r.value, r.alg.Bits())
}

// parseSalt reads decimal or 0x-prefixed input; empty means def.
func parseSalt(s string, def uint64) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid salt %q", s)
	}
	return n, nil
}

// hashAll hashes input with every algorithm. A salt too wide for a 32-bit
// variant fails only that row.
func hashAll(input string, salt uint64) []hashRow {
	algs := djb.Algorithms()
	rows := make([]hashRow, 0, len(algs))
	for _, a := range algs {
		h, err := djb.NewWithSalt(a, salt)
		if err != nil {
			rows = append(rows, hashRow{alg: a, err: err})
			continue
		}
		_, _ = h.Write([]byte(input))
		rows = append(rows, hashRow{alg: a, value: h.Sum64()})
	}
	return rows
}

func (m model) renderHashTable(rows []hashRow, selected djb.Algorithm) string {
	var b strings.Builder
	for _, r := range rows {
		var line string
		if r.err != nil {
			line = fmt.Sprintf("%-14s %s", r.alg, m.theme.Error.Render("salt out of range"))
		} else {
			line = fmt.Sprintf("%-14s %16s  %d", r.alg, r.hex(), r.value)
		}

		if r.alg == selected {
			b.WriteString(m.theme.Selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
