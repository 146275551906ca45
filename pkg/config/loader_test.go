package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"github.com/epithet-ssh/rlp/pkg/config"
	"github.com/epithet-ssh/rlp/pkg/rlp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "rlp.yaml", `
codec:
  max_depth: 16
  max_length: 4096
  canonical: true
output:
  format: template
  template: "{{#fragments}}{{hex}}\n{{/fragments}}"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Codec.MaxDepth != 16 {
		t.Errorf("max_depth: got %d, want 16", cfg.Codec.MaxDepth)
	}
	if cfg.Codec.MaxLength != 4096 {
		t.Errorf("max_length: got %d, want 4096", cfg.Codec.MaxLength)
	}
	if !cfg.Codec.Canonical {
		t.Error("expected canonical to be true")
	}
	if cfg.Output.Format != config.FormatTemplate {
		t.Errorf("format: got %q", cfg.Output.Format)
	}
	if !strings.Contains(cfg.Output.Template, "{{hex}}") {
		t.Errorf("template: got %q", cfg.Output.Template)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "rlp.json", `{
  "codec": {"canonical": true},
  "output": {"format": "json"}
}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if !cfg.Codec.Canonical {
		t.Error("expected canonical to be true")
	}
	if cfg.Output.Format != config.FormatJSON {
		t.Errorf("format: got %q, want json", cfg.Output.Format)
	}
}

func TestLoad_CUE(t *testing.T) {
	path := writeFile(t, "rlp.cue", `
codec: {
	max_depth: 2 * 8
}
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Codec.MaxDepth != 16 {
		t.Errorf("max_depth: got %d, want 16", cfg.Codec.MaxDepth)
	}
	if cfg.Output.Format != config.FormatHex {
		t.Errorf("format should default to hex, got %q", cfg.Output.Format)
	}
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Format != config.FormatHex {
		t.Errorf("format: got %q, want hex", cfg.Output.Format)
	}
	if len(cfg.Codec.Options()) != 0 {
		t.Error("default codec should add no options")
	}
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/rlp.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

func TestLoad_SchemaRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown top-level key", "codecs:\n  canonical: true\n"},
		{"unknown codec key", "codec:\n  depth: 3\n"},
		{"negative depth", "codec:\n  max_depth: -1\n"},
		{"wrong type", "codec:\n  canonical: \"yes\"\n"},
		{"unknown format", "output:\n  format: xml\n"},
		{"template without body", "output:\n  format: template\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCodec_Options(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("codec:\n  max_depth: 1\n  canonical: true\n"))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	dec := cfg.Codec.Decoder()

	// depth 2 is over the configured limit
	_, err = dec.DecodeList(rlp.EncodeList(rlp.EncodeList()))
	if !errors.Is(err, rlp.ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, got %v", err)
	}

	// non-canonical single byte
	_, err = dec.DecodeList([]byte{0x81, 0x01})
	if !errors.Is(err, rlp.ErrCanonSize) {
		t.Errorf("expected ErrCanonSize, got %v", err)
	}
}

func TestCodec_MaxLengthOption(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader("codec:\n  max_length: 2\n"))
	if err != nil {
		t.Fatalf("failed to parse config: %v", err)
	}

	_, err = cfg.Codec.Decoder().DecodeList(rlp.EncodeString("dog"))
	if !errors.Is(err, rlp.ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestLoadValue_DirectPathLookup(t *testing.T) {
	path := writeFile(t, "rlp.yaml", `
codec:
  max_depth: 8
  canonical: true
output:
  format: hex
`)

	val, err := config.LoadValue(path)
	if err != nil {
		t.Fatalf("failed to load value: %v", err)
	}

	depth, err := val.LookupPath(cue.ParsePath("codec.max_depth")).Int64()
	if err != nil || depth != 8 {
		t.Errorf("codec.max_depth: got %d, %v", depth, err)
	}

	canonical, err := val.LookupPath(cue.ParsePath("codec.canonical")).Bool()
	if err != nil || !canonical {
		t.Errorf("codec.canonical: got %v, %v", canonical, err)
	}

	format, err := val.LookupPath(cue.ParsePath("output.format")).String()
	if err != nil || format != "hex" {
		t.Errorf("output.format: got %q, %v", format, err)
	}
}

func TestLoadFromFile_Generic(t *testing.T) {
	path := writeFile(t, "rlp.yaml", "codec:\n  max_length: 99\n")

	cfg, err := config.LoadFromFile[config.File](path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if cfg.Codec.MaxLength != 99 {
		t.Errorf("max_length: got %d, want 99", cfg.Codec.MaxLength)
	}
	// LoadFromFile skips schema defaults.
	if cfg.Output.Format != "" {
		t.Errorf("format: got %q, want empty", cfg.Output.Format)
	}
}

func TestLoadValueFromReader(t *testing.T) {
	val, err := config.LoadValueFromReader(strings.NewReader(`{"codec": {"max_depth": 3}}`))
	if err != nil {
		t.Fatalf("failed to load value: %v", err)
	}
	depth, err := val.LookupPath(cue.ParsePath("codec.max_depth")).Int64()
	if err != nil || depth != 3 {
		t.Errorf("codec.max_depth: got %d, %v", depth, err)
	}
}
