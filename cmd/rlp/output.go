package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/cbroglie/mustache"
	"github.com/epithet-ssh/rlp/pkg/config"
)

// decoded is what the decode command reports.
type decoded struct {
	Fragments [][]byte
	Consumed  int
}

// view is the mustache/JSON shape of a decode result.
//
// Template fields: count, consumed, and per fragment index, hex, text,
// length, printable. {{text}} is HTML-escaped; use {{{text}}} for raw text.
func (d decoded) view() map[string]any {
	frags := make([]map[string]any, len(d.Fragments))
	for i, f := range d.Fragments {
		frags[i] = map[string]any{
			"index":     i,
			"hex":       hex.EncodeToString(f),
			"text":      string(f),
			"length":    len(f),
			"printable": printable(f),
		}
	}
	return map[string]any{
		"count":     len(d.Fragments),
		"consumed":  d.Consumed,
		"fragments": frags,
	}
}

type jsonResult struct {
	Consumed  int      `json:"consumed"`
	Fragments []string `json:"fragments"`
}

func render(w io.Writer, out config.Output, d decoded) error {
	switch out.Format {
	case config.FormatJSON:
		res := jsonResult{Consumed: d.Consumed, Fragments: make([]string, len(d.Fragments))}
		for i, f := range d.Fragments {
			res.Fragments[i] = hex.EncodeToString(f)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case config.FormatTemplate:
		s, err := mustache.Render(out.Template, d.view())
		if err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
		_, err = io.WriteString(w, s)
		return err

	default:
		for _, f := range d.Fragments {
			if _, err := fmt.Fprintf(w, "%x\n", f); err != nil {
				return err
			}
		}
		return nil
	}
}

func printable(b []byte) bool {
	if len(b) == 0 || !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
