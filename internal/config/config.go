// Package config holds the settings of an isaext run. Values come from an
// optional YAML or JSON file, then ISAEXT_* environment variables, then
// command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/invopop/jsonschema"
	"sigs.k8s.io/yaml"

	"isaext/internal/classify"
	"isaext/internal/report"
	"isaext/internal/toolpipe"
)

const (
	BackendNative = "native"
	BackendPipe   = "pipe"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Backend      string `json:"backend,omitempty" jsonschema:"title=Backend,description=How instructions are classified,enum=native,enum=pipe,default=native"`
	Workers      int    `json:"workers,omitempty" jsonschema:"title=Workers,description=Classification workers; 0 uses one per CPU,minimum=0"`
	ChunkSize    int    `json:"chunk_size,omitempty" jsonschema:"title=Chunk Size,description=Instructions per worker task; 0 uses the default,minimum=0"`
	GapPolicy    string `json:"gap_policy,omitempty" jsonschema:"title=Gap Policy,description=What to do with instructions missing from the feature tables,enum=error,enum=ignore,default=error"`
	Bits         int    `json:"bits,omitempty" jsonschema:"title=Bits,description=Execution mode override,enum=0,enum=16,enum=32,enum=64"`
	Raw          bool   `json:"raw,omitempty" jsonschema:"title=Raw,description=Treat the input as a raw code blob; requires bits"`
	Format       string `json:"format,omitempty" jsonschema:"title=Format,description=Report format,enum=text,enum=json,enum=markdown,default=text"`
	HostCheck    bool   `json:"host_check,omitempty" jsonschema:"title=Host Check,description=Flag features the running CPU lacks"`
	Explain      bool   `json:"explain,omitempty" jsonschema:"title=Explain,description=Show counts and the first instruction per feature"`
	MetricsFile  string `json:"metrics_file,omitempty" jsonschema:"title=Metrics File,description=Write per-feature counts in Prometheus text format"`
	Disassembler string `json:"disassembler,omitempty" jsonschema:"title=Disassembler,description=Listing command for the pipe backend; {path} is substituted"`
	Oracle       string `json:"oracle,omitempty" jsonschema:"title=Oracle,description=Per-instruction command for the pipe backend; {bits} and {hex} are substituted"`
}

func Default() Config {
	return Config{
		Backend:      BackendNative,
		GapPolicy:    classify.GapFail.String(),
		Format:       report.FormatText,
		Disassembler: toolpipe.DefaultDisassembler,
		Oracle:       toolpipe.DefaultOracle,
	}
}

// Load reads path over the defaults and applies the environment. An empty
// path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ISAEXT_* variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"ISAEXT_BACKEND":      &c.Backend,
		"ISAEXT_GAP_POLICY":   &c.GapPolicy,
		"ISAEXT_FORMAT":       &c.Format,
		"ISAEXT_METRICS_FILE": &c.MetricsFile,
		"ISAEXT_DISASSEMBLER": &c.Disassembler,
		"ISAEXT_ORACLE":       &c.Oracle,
	}
	for name, dst := range str {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"ISAEXT_WORKERS":    &c.Workers,
		"ISAEXT_CHUNK_SIZE": &c.ChunkSize,
		"ISAEXT_BITS":       &c.Bits,
	}
	for name, dst := range ints {
		if v, ok := lookup(name); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, name, v)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"ISAEXT_RAW":        &c.Raw,
		"ISAEXT_HOST_CHECK": &c.HostCheck,
		"ISAEXT_EXPLAIN":    &c.Explain,
	}
	for name, dst := range bools {
		if v, ok := lookup(name); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, name, v)
			}
			*dst = b
		}
	}
	return nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNative, BackendPipe:
	default:
		return fmt.Errorf("%w: backend %q (want native or pipe)", ErrInvalid, c.Backend)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk_size %d", ErrInvalid, c.ChunkSize)
	}
	if _, err := classify.ParseGapPolicy(c.GapPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Bits {
	case 0, 16, 32, 64:
	default:
		return fmt.Errorf("%w: bits %d (want 16, 32 or 64)", ErrInvalid, c.Bits)
	}
	if c.Raw && c.Bits == 0 {
		return fmt.Errorf("%w: raw input needs bits", ErrInvalid)
	}
	switch c.Format {
	case report.FormatText, report.FormatJSON, report.FormatMarkdown:
	default:
		return fmt.Errorf("%w: format %q (want text, json or markdown)", ErrInvalid, c.Format)
	}
	if c.Backend == BackendPipe && (c.Disassembler == "" || c.Oracle == "") {
		return fmt.Errorf("%w: pipe backend needs disassembler and oracle commands", ErrInvalid)
	}
	return nil
}

// GapMode returns the parsed gap policy. Call Validate first.
func (c Config) GapMode() classify.GapPolicy {
	p, _ := classify.ParseGapPolicy(c.GapPolicy)
	return p
}

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	reflector := new(jsonschema.Reflector)
	bts, err := json.MarshalIndent(reflector.Reflect(&Config{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return bts, nil
}
