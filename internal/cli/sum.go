package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/djbhash/internal/domain"
	"github.com/aalvaropc/djbhash/internal/infra/checksumfile"
	"github.com/aalvaropc/djbhash/internal/infra/config"
	"github.com/aalvaropc/djbhash/internal/infra/logger"
	"github.com/aalvaropc/djbhash/internal/infra/source"
	"github.com/aalvaropc/djbhash/internal/usecase"
)

func sumCmd(opts *rootOptions) *cobra.Command {
	var algo string
	var salt uint64
	var strs []string
	var jsonPath string
	var tag bool
	var format string
	var save bool
	var name string

	c := &cobra.Command{
		Use:   "sum [file|-|url]...",
		Short: "Print djb checksums of files, stdin, URLs or literal strings",
		Long: "Print one checksum line per source. With no sources and no --string, standard input is hashed.\n" +
			"Text output is compatible with `djbhash check`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts.workspace, cmd.InOrStdin())
			if err != nil {
				return err
			}

			hopts, err := hashOptions(cmd, ws.cfg, algo, salt)
			if err != nil {
				return err
			}
			hopts.JSONPath = jsonPath

			if format == "" {
				format = ws.cfg.Defaults.Format
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}

			if cmd.Flags().Changed("salt") {
				warnSalt(cmd.ErrOrStderr(), hopts)
			}

			if len(args) == 0 && len(strs) == 0 {
				args = []string{source.Stdin}
			}

			var digests []domain.Digest
			if len(strs) > 0 {
				ds, err := usecase.HashStrings(strs, hopts)
				if err != nil {
					return err
				}
				digests = append(digests, ds...)
			}
			if len(args) > 0 {
				uc := usecase.NewHashSources(ws.opener, usecase.WithLogger(logger.L()))
				ds, err := uc.Execute(cmd.Context(), args, hopts)
				if err != nil {
					return err
				}
				digests = append(digests, ds...)
			}

			if err := printDigests(cmd.OutOrStdout(), cmd.ErrOrStderr(), digests, format, tag); err != nil {
				return err
			}

			if save {
				if err := requireWorkspace(ws); err != nil {
					return err
				}
				id, err := usecase.NewSaveManifest(ws.store).Execute(name, hopts, digests)
				if err != nil {
					return err
				}
				logger.L().Info("manifest.saved", "id", id, "entries", len(digests))
				fmt.Fprintf(cmd.ErrOrStderr(), "saved manifest %s\n", id)
			}

			if n := countFailed(digests); n > 0 {
				return fmt.Errorf("%d source(s) could not be hashed", n)
			}
			return nil
		},
	}

	addAlgoFlags(c, &algo, &salt)
	c.Flags().StringArrayVarP(&strs, "string", "s", nil, "Hash a literal string (repeatable)")
	c.Flags().StringVar(&jsonPath, "jsonpath", "", "Hash each value a JSONPath selects from JSON sources")
	c.Flags().BoolVar(&tag, "tag", false, "Use BSD-style tagged lines: X33A (path) = hex")
	c.Flags().StringVar(&format, "format", "", "Output format: text|json (default from djbhash.yaml)")
	c.Flags().BoolVar(&save, "save", false, "Save the digests as a manifest under the workspace")
	c.Flags().StringVar(&name, "name", "", "Manifest name for --save; may use {{algo}}, {{salt}}, {{date}}, {{count}}")
	return c
}

type jsonDigest struct {
	domain.Digest
	Hex string `json:"hex,omitempty"`
}

func printDigests(w, errW io.Writer, digests []domain.Digest, format string, tag bool) error {
	switch format {
	case "json":
		out := make([]jsonDigest, 0, len(digests))
		for _, d := range digests {
			jd := jsonDigest{Digest: d}
			if !d.Failed() {
				jd.Hex = d.Hex()
			}
			out = append(out, jd)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text", "":
		for _, d := range digests {
			if d.Failed() {
				fmt.Fprintf(errW, "djbhash: %s: %s\n", d.Source, d.Error)
				continue
			}
			fmt.Fprintln(w, checksumfile.FormatLine(d, tag))
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}

func countFailed(digests []domain.Digest) int {
	n := 0
	for _, d := range digests {
		if d.Failed() {
			n++
		}
	}
	return n
}
