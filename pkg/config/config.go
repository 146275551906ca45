package config

import (
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/epithet-ssh/rlp/pkg/rlp"
)

// Output formats for decoded fragments.
const (
	FormatHex      = "hex"
	FormatJSON     = "json"
	FormatTemplate = "template"
)

// schema closes the config so misspelled keys are reported instead of ignored.
const schema = `
#File: {
	codec?: {
		max_depth?:  int & >=0
		max_length?: int & >=0
		canonical?:  bool
	}
	output?: {
		format?:   "hex" | "json" | "template"
		template?: string
	}
}
`

// File is the configuration file layout.
type File struct {
	Codec  Codec  `yaml:"codec" json:"codec"`
	Output Output `yaml:"output" json:"output"`
}

// Codec holds decoder limits.
type Codec struct {
	MaxDepth  int    `yaml:"max_depth,omitempty" json:"max_depth,omitempty"`   // 0 keeps the decoder default
	MaxLength uint64 `yaml:"max_length,omitempty" json:"max_length,omitempty"` // 0 is unlimited
	Canonical bool   `yaml:"canonical,omitempty" json:"canonical,omitempty"`
}

// Output controls how the CLI prints decoded fragments.
type Output struct {
	Format   string `yaml:"format,omitempty" json:"format,omitempty"`
	Template string `yaml:"template,omitempty" json:"template,omitempty"` // mustache, used with format "template"
}

// Default returns the configuration used when no file is given.
func Default() *File {
	return &File{
		Output: Output{Format: FormatHex},
	}
}

// Load reads and validates a config file. An empty path returns Default().
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}

	ctx := cuecontext.New()
	val, err := loadPath(ctx, path)
	if err != nil {
		return nil, err
	}
	return decode(ctx, val)
}

// Parse reads and validates YAML or JSON config from r.
func Parse(r io.Reader) (*File, error) {
	ctx := cuecontext.New()
	val, err := loadReader(ctx, r)
	if err != nil {
		return nil, err
	}
	return decode(ctx, val)
}

func decode(ctx *cue.Context, val cue.Value) (*File, error) {
	def := ctx.CompileString(schema).LookupPath(cue.ParsePath("#File"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile config schema: %w", err)
	}

	val = def.Unify(val)
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var f File
	if err := val.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if f.Output.Format == "" {
		f.Output.Format = FormatHex
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks constraints that span fields.
func (f *File) Validate() error {
	if f.Codec.MaxDepth < 0 {
		return fmt.Errorf("codec.max_depth must not be negative")
	}
	return f.Output.Validate()
}

// Validate checks that the format is known and has what it needs.
func (o Output) Validate() error {
	switch o.Format {
	case FormatHex, FormatJSON:
	case FormatTemplate:
		if o.Template == "" {
			return fmt.Errorf("output format %q requires a template", FormatTemplate)
		}
	default:
		return fmt.Errorf("unknown output format %q", o.Format)
	}
	return nil
}

// Options converts the codec section into decoder options.
func (c Codec) Options() []rlp.Option {
	var opts []rlp.Option
	if c.MaxDepth > 0 {
		opts = append(opts, rlp.MaxDepth(c.MaxDepth))
	}
	if c.MaxLength > 0 {
		opts = append(opts, rlp.MaxLength(c.MaxLength))
	}
	if c.Canonical {
		opts = append(opts, rlp.Canonical())
	}
	return opts
}

// Decoder builds a decoder from the codec section.
func (c Codec) Decoder() *rlp.Decoder {
	return rlp.NewDecoder(c.Options()...)
}
