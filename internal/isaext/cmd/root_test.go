package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaext/internal/classify"
	"isaext/internal/codesrc"
	"isaext/internal/config"
	"isaext/internal/disasm"
	"isaext/internal/feature"
	"isaext/internal/report"
)

func writeBlob(t *testing.T, code []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "code.bin")
	require.NoError(t, os.WriteFile(path, code, 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// push rbp; paddd xmm0, xmm1; vpaddd ymm0, ymm0, ymm1; andn eax, ecx, edx; ret
var blob = []byte{
	0x55,
	0x66, 0x0f, 0xfe, 0xc1,
	0xc5, 0xfd, 0xfe, 0xc1,
	0xc4, 0xe2, 0x70, 0xf2, 0xc2,
	0xc3,
}

func TestRootText(t *testing.T) {
	out, err := execute(t, "--raw", "--bits", "64", writeBlob(t, blob))
	require.NoError(t, err)
	assert.Equal(t, "SSE2  BMI1  AVX2\n", out)
}

func TestRootBaselineOnly(t *testing.T) {
	out, err := execute(t, "--raw", "--bits", "32", writeBlob(t, []byte{0x90, 0xc3}))
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestRootJSON(t *testing.T) {
	out, err := execute(t, "--raw", "--bits", "64", "-j", "-e", "--workers", "2", "--chunk-size", "1", writeBlob(t, blob))
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, []string{"SSE2", "BMI1", "AVX2"}, rep.IDs())
	assert.Equal(t, "native", rep.Backend)
	assert.Equal(t, 5, rep.Instructions)
	require.NotNil(t, rep.Features[0].Witness)
	assert.Equal(t, "0x1", rep.Features[0].Witness.Addr)
}

func TestRootMetricsAndConfig(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "isaext.prom")
	cfgPath := filepath.Join(dir, "isaext.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: markdown\nraw: true\nbits: 64\nmetrics_file: "+metrics+"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, writeBlob(t, blob))
	require.NoError(t, err)
	assert.Contains(t, out, "| AVX2 | AVX2 | 1 |")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `feature="BMI1"} 1`)
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"truncated", []string{"--raw", "--bits", "64", writeBlob(t, []byte{0x90, 0x0f})}, disasm.ErrTruncated},
		{"not a binary", []string{writeBlob(t, []byte("hello world"))}, codesrc.ErrUnknownFormat},
		{"raw without bits", []string{"--raw", writeBlob(t, blob)}, config.ErrInvalid},
		{"bad backend", []string{"--backend", "iced", writeBlob(t, blob)}, config.ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := execute(t)
	assert.Error(t, err, "a file is required")
}

func TestNewBackend(t *testing.T) {
	c := classify.New(classify.GapFail)
	cfg := config.Default()
	assert.Equal(t, "native", newBackend(cfg, c).Name())
	cfg.Backend = config.BackendPipe
	assert.Equal(t, "pipe", newBackend(cfg, c).Name())
}

func TestFeaturesCmd(t *testing.T) {
	out, err := execute(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "AVX512F")
	assert.True(t, strings.HasPrefix(out, "FPU"))

	out, err = execute(t, "features", "--json")
	require.NoError(t, err)
	var infos []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.NotEmpty(t, infos)

	out, err = execute(t, "features", "--ops")
	require.NoError(t, err)
	assert.Contains(t, out, "popcnt")
}

func TestOpsByFeature(t *testing.T) {
	ops := opsByFeature()
	assert.Contains(t, ops[feature.AVX2], "vpbroadcastd")
	assert.Contains(t, ops[feature.POPCNT], "popcnt")
	assert.NotContains(t, ops, feature.ID(""))
}

func TestSchemaCmd(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"gap_policy"`)
}
