// Package config loads configuration for the rlp tool.
// It supports YAML, JSON, and CUE file formats using CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// LoadValueFromReader parses YAML (or JSON) from r into a CUE value.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	return loadReader(cuecontext.New(), r)
}

// LoadValue loads a file or directory into a CUE value.
//
// For .cue files and directories: uses load.Instances, so CUE packages with
// imports work. For .yaml/.yml/.json files: parses the file directly.
func LoadValue(path string) (cue.Value, error) {
	return loadPath(cuecontext.New(), path)
}

// LoadFromFile loads a file or directory and decodes it into T.
//
//	cfg, err := LoadFromFile[File]("rlp.yaml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	var out T
	if err := val.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &out, nil
}

func loadReader(ctx *cue.Context, r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	return buildYAML(ctx, "", data)
}

func loadPath(ctx *cue.Context, path string) (cue.Value, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() || strings.EqualFold(filepath.Ext(path), ".cue") {
		return loadInstance(ctx, path, info.IsDir())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	var val cue.Value
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		val = ctx.CompileBytes(data, cue.Filename(path))
	default:
		// .yaml, .yml, and anything else: YAML is a superset of JSON
		return buildYAML(ctx, path, data)
	}

	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func loadInstance(ctx *cue.Context, path string, isDir bool) (cue.Value, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}
	arg := absPath
	if isDir {
		cfg.Dir = absPath
		arg = "."
	}

	instances := load.Instances([]string{arg}, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}
	if err := instances[0].Err; err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", err)
	}

	val := ctx.BuildInstance(instances[0])
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}

func buildYAML(ctx *cue.Context, name string, data []byte) (cue.Value, error) {
	file, err := yaml.Extract(name, data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}
	return val, nil
}
