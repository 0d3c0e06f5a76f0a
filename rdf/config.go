package rdf

import (
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileParserOptions mirrors ParserOptions' configurable fields in a
// form both yaml.v3 and BurntSushi/toml can decode directly; the
// Context field has no serializable representation and is always
// left at its ParserOptions default.
type fileParserOptions struct {
	BaseIRI          string            `yaml:"base_iri" toml:"base_iri"`
	Prefixes         map[string]string `yaml:"prefixes" toml:"prefixes"`
	Validate         bool              `yaml:"validate" toml:"validate"`
	Canonicalize     bool              `yaml:"canonicalize" toml:"canonicalize"`
	MaxTokenBytes    int64             `yaml:"max_token_bytes" toml:"max_token_bytes"`
	MaxDocumentBytes int64             `yaml:"max_document_bytes" toml:"max_document_bytes"`
}

func (f fileParserOptions) toParserOptions() ParserOptions {
	opts := DefaultParserOptions()
	opts.BaseIRI = f.BaseIRI
	if f.Prefixes != nil {
		opts.Prefixes = f.Prefixes
	}
	opts.Validate = f.Validate
	opts.Canonicalize = f.Canonicalize
	if f.MaxTokenBytes != 0 {
		opts.MaxTokenBytes = f.MaxTokenBytes
	}
	opts.MaxDocumentBytes = f.MaxDocumentBytes
	return normalizeParserOptions(opts)
}

// LoadParserOptionsYAML reads ParserOptions from a YAML config file —
// the pattern a caller embedding this parser in a larger ingestion
// pipeline uses instead of building ParserOptions by hand in Go.
func LoadParserOptionsYAML(path string) (ParserOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParserOptions{}, err
	}
	var f fileParserOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return ParserOptions{}, err
	}
	return f.toParserOptions(), nil
}

// LoadParserOptionsTOML reads ParserOptions from a TOML config file.
func LoadParserOptionsTOML(path string) (ParserOptions, error) {
	var f fileParserOptions
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return ParserOptions{}, err
	}
	return f.toParserOptions(), nil
}
