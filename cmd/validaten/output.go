package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrymomot/validaten/pkg/inspect"
	"github.com/dmitrymomot/validaten/pkg/sanitizer"
)

// result is a single-category verdict for one argument.
type result struct {
	Input string `json:"input"`
	inspect.Match
}

// display returns the text shown for value. A card match made only of digits
// and spaces is masked or grouped by four depending on configuration; any
// other input is shown as given.
func (a *app) display(value string, isCard bool) string {
	if !isCard || !isCardNumber(value) {
		return value
	}
	if a.cfg.MaskCards {
		return sanitizer.MaskCreditCard(value)
	}
	return sanitizer.FormatCreditCard(value)
}

func (a *app) writeResults(w io.Writer, results []result) error {
	if a.cfg.Output == outputJSON {
		return writeJSON(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tCATEGORY\tBRAND\tVALID\tDETAIL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%s\n", r.Input, r.Category, dash(r.Brand), r.Valid, dash(r.Detail))
	}
	return tw.Flush()
}

func (a *app) writeReports(w io.Writer, reports []inspect.Report) error {
	if a.cfg.Output == outputJSON {
		return writeJSON(w, reports)
	}

	var b strings.Builder
	for _, r := range reports {
		b.WriteString(r.Input)
		b.WriteString("\n")
		if !r.Recognized() {
			b.WriteString("  unrecognised\n")
			continue
		}
		for _, m := range r.Matches {
			fmt.Fprintf(&b, "  %-6s %-18s valid=%t", m.Category, m.Brand, m.Valid)
			if m.Detail != "" {
				fmt.Fprintf(&b, " (%s)", m.Detail)
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeMessages prints translated validation messages per field, in the
// order the fields first failed.
func (a *app) writeMessages(w io.Writer, fields []string, messages map[string][]string) error {
	if a.cfg.Output == outputJSON {
		if messages == nil {
			messages = map[string][]string{}
		}
		return writeJSON(w, messages)
	}
	if len(fields) == 0 {
		_, err := fmt.Fprintln(w, "ok")
		return err
	}
	var b strings.Builder
	for _, field := range fields {
		for _, msg := range messages[field] {
			fmt.Fprintf(&b, "%s: %s\n", field, msg)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// isCardNumber reports whether value is a non-empty run of digits once spaces
// are removed. Card patterns only anchor a prefix, so IPs, hex digests and
// Monero addresses can match them too.
func isCardNumber(value string) bool {
	digits := sanitizer.RemoveSpaces(value)
	return digits != "" && strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) < 0
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
