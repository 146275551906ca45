package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// parseHex decodes hex input. Whitespace and a leading 0x are ignored.
func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// readInput returns the hex argument, or stdin when the argument is empty or "-".
func readInput(arg string, stdin io.Reader) ([]byte, error) {
	if arg != "" && arg != "-" {
		return parseHex(arg)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return parseHex(string(data))
}

// parseValues converts command arguments into byte strings.
func parseValues(values []string, text bool) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		if text {
			out[i] = []byte(v)
			continue
		}
		b, err := parseHex(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}
