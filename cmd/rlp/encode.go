package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/epithet-ssh/rlp/pkg/rlp"
	"github.com/holiman/uint256"
)

// EncodeCLI encodes a single byte string.
type EncodeCLI struct {
	Value string `arg:"" help:"Hex-encoded byte string (or text with --text); use \"\" for the empty string"`
	Text  bool   `help:"Treat the value as raw text instead of hex" short:"t"`
}

func (e *EncodeCLI) Run(logger *slog.Logger, w io.Writer) error {
	values, err := parseValues([]string{e.Value}, e.Text)
	if err != nil {
		return err
	}

	enc := rlp.Encode(values[0])
	logger.Debug("encoded", "input_bytes", len(values[0]), "output_bytes", len(enc))

	_, err = fmt.Fprintf(w, "%x\n", enc)
	return err
}

// EncodeListCLI encodes each value and wraps them in one list.
type EncodeListCLI struct {
	Values []string `arg:"" optional:"" help:"Hex-encoded byte strings (or text with --text)"`
	Text   bool     `help:"Treat values as raw text instead of hex" short:"t"`
}

func (e *EncodeListCLI) Run(logger *slog.Logger, w io.Writer) error {
	values, err := parseValues(e.Values, e.Text)
	if err != nil {
		return err
	}

	enc := rlp.EncodeBytesList(values)
	logger.Debug("encoded list", "items", len(values), "output_bytes", len(enc))

	_, err = fmt.Fprintf(w, "%x\n", enc)
	return err
}

// EncodeUintCLI encodes an unsigned integer of up to 256 bits.
type EncodeUintCLI struct {
	Value string `arg:"" help:"Unsigned integer, decimal or 0x-prefixed hex"`
}

func (e *EncodeUintCLI) Run(logger *slog.Logger, w io.Writer) error {
	v, err := parseUint(e.Value)
	if err != nil {
		return err
	}

	enc := rlp.EncodeUint256(v)
	logger.Debug("encoded uint", "value", v.Dec(), "output_bytes", len(enc))

	_, err = fmt.Fprintf(w, "%x\n", enc)
	return err
}

func parseUint(s string) (*uint256.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := uint256.FromHex("0x" + s[2:])
		if err != nil {
			return nil, fmt.Errorf("invalid hex integer %q: %w", s, err)
		}
		return v, nil
	}

	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return v, nil
}
