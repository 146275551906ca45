package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/epithet-ssh/rlp/pkg/config"
)

// DecodeCLI decodes an RLP buffer into its leaf byte strings.
type DecodeCLI struct {
	Input    string `arg:"" optional:"" help:"Hex-encoded RLP; read from stdin when omitted or -"`
	Offset   int    `help:"Decode the value starting at this byte offset"`
	Partial  bool   `help:"Allow bytes after the value instead of requiring the whole buffer"`
	Format   string `help:"Output format: hex, json or template (overrides config)" short:"f"`
	Template string `help:"Mustache template for the output (implies --format=template)"`
}

func (d *DecodeCLI) Run(logger *slog.Logger, cfg *config.File, stdin io.Reader, w io.Writer) error {
	out := cfg.Output
	if d.Template != "" {
		out.Template = d.Template
		out.Format = config.FormatTemplate
	}
	if d.Format != "" {
		out.Format = d.Format
	}
	if err := out.Validate(); err != nil {
		return err
	}

	data, err := readInput(d.Input, stdin)
	if err != nil {
		return err
	}

	dec := cfg.Codec.Decoder()
	var res decoded

	if d.Partial || d.Offset != 0 {
		frags, n, err := dec.Decode(data, d.Offset)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		if !d.Partial && d.Offset+n != len(data) {
			return fmt.Errorf("decode failed: %d bytes follow the value at offset %d (use --partial)", len(data)-d.Offset-n, d.Offset)
		}
		res = decoded{Fragments: frags, Consumed: n}
	} else {
		frags, err := dec.DecodeList(data)
		if err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		res = decoded{Fragments: frags, Consumed: len(data)}
	}

	logger.Info("decoded", "input_bytes", len(data), "consumed", res.Consumed, "fragments", len(res.Fragments))
	return render(w, out, res)
}
