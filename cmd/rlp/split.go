package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/epithet-ssh/rlp/pkg/rlp"
)

// SplitCLI shows one level of structure, which decode flattens away.
type SplitCLI struct {
	Input string `arg:"" optional:"" help:"Hex-encoded RLP; read from stdin when omitted or -"`
	JSON  bool   `help:"Output in JSON format" short:"j"`
}

type splitResult struct {
	Kind    string `json:"kind"`
	Content string `json:"content"`
	Rest    string `json:"rest"`
	Values  int    `json:"values,omitempty"` // direct children of a list
}

func (s *SplitCLI) Run(logger *slog.Logger, stdin io.Reader, w io.Writer) error {
	data, err := readInput(s.Input, stdin)
	if err != nil {
		return err
	}

	kind, content, rest, err := rlp.Split(data)
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	res := splitResult{
		Kind:    kind.String(),
		Content: fmt.Sprintf("%x", content),
		Rest:    fmt.Sprintf("%x", rest),
	}
	if kind.IsList() {
		res.Values, err = rlp.CountValues(content)
		if err != nil {
			return fmt.Errorf("list body: %w", err)
		}
	}
	logger.Debug("split", "kind", res.Kind, "content_bytes", len(content), "rest_bytes", len(rest))

	if s.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "kind:    %s\n", res.Kind)
	fmt.Fprintf(w, "content: %s\n", res.Content)
	if kind.IsList() {
		fmt.Fprintf(w, "values:  %d\n", res.Values)
	}
	_, err = fmt.Fprintf(w, "rest:    %s\n", res.Rest)
	return err
}
