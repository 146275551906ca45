package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/epithet-ssh/rlp/pkg/config"
)

// CLI is the root command. Codec flags override the config file.
type CLI struct {
	Verbose   int    `help:"Increase log verbosity (-v info, -vv debug)" short:"v" type:"counter"`
	Config    string `help:"Config file or directory (CUE, YAML or JSON)" short:"c" type:"path" env:"RLP_CONFIG"`
	MaxDepth  int    `help:"Maximum list nesting accepted when decoding" name:"max-depth"`
	MaxLength uint64 `help:"Maximum declared item length accepted when decoding" name:"max-length"`
	Canonical bool   `help:"Reject non-canonical encodings when decoding"`

	Encode     EncodeCLI     `cmd:"" help:"Encode one byte string"`
	EncodeList EncodeListCLI `cmd:"" name:"encode-list" help:"Encode byte strings and wrap them in a list"`
	EncodeUint EncodeUintCLI `cmd:"" name:"encode-uint" help:"Encode an unsigned integer (decimal or 0x hex)"`
	Decode     DecodeCLI     `cmd:"" help:"Decode an RLP value into its byte strings (nested lists are flattened)"`
	Split      SplitCLI      `cmd:"" help:"Show the first value in a buffer without descending into it"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rlp"),
		kong.Description("Encode and decode Recursive Length Prefix (RLP) data."),
		kong.UsageOnError(),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	logger := newLogger(os.Stderr, cli.Verbose)

	cfg, err := cli.loadConfig(logger)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(logger, cfg)
	ctx.FatalIfErrorf(err)
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (c *CLI) loadConfig(logger *slog.Logger) (*config.File, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.MaxDepth > 0 {
		cfg.Codec.MaxDepth = c.MaxDepth
	}
	if c.MaxLength > 0 {
		cfg.Codec.MaxLength = c.MaxLength
	}
	if c.Canonical {
		cfg.Codec.Canonical = true
	}

	logger.Debug("config",
		"path", c.Config,
		"max_depth", cfg.Codec.MaxDepth,
		"max_length", cfg.Codec.MaxLength,
		"canonical", cfg.Codec.Canonical,
		"format", cfg.Output.Format)
	return cfg, nil
}
