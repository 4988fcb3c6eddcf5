package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// yamlConfig loads flag defaults from a YAML mapping keyed by flag name,
// for example:
//
//	concurrency: 8
//	timeout: 10s
//	output: ./amp
func yamlConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		// Accept snake_case spellings of dashed flag names.
		return values[strings.ReplaceAll(flag.Name, "-", "_")], nil
	}), nil
}

func defaultConfigPath() string {
	if path := os.Getenv("AMPCONV_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ampconv.yaml"
	}
	return filepath.Join(home, ".ampconv", "config.yaml")
}
