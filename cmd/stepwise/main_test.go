package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/engine"
)

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-algo", "kmp",
		"-input", "ABABDABACDABABCABCABCABCAB",
		"-params", `{"pattern":"ABABCAB"}`,
	}, &stdout, &stderr)
	require.NoError(t, err)

	var resp struct {
		Algorithm string `json:"algorithm"`
		Result    struct {
			Matches []int `json:"matches"`
		} `json:"result"`
		Steps []json.RawMessage `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "kmp", resp.Algorithm)
	assert.Equal(t, []int{10}, resp.Result.Matches)
	assert.NotEmpty(t, resp.Steps)
}

func TestRun_YAMLAndList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-algo", "list", "-format", "yaml"}, &stdout, &stderr))
	var infos []engine.Info
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &infos))
	assert.Len(t, infos, len(engine.Algorithms()))

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"-algo", "selection", "-input", "3,2,1", "-format", "yaml"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "algorithm: selection")
}

func TestRun_Play(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-algo", "bubble", "-input", "2 1", "-play", "-interval", "1ms", "-log-level", "error",
	}, &stdout, &stderr)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "[1/"), lines[0])
	assert.Contains(t, lines[len(lines)-1], "complete")
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ring:\n  replicas: 3\nlog:\n  level: warn\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-config", path, "-algo", "hashring", "-input", "k1 k2", "-params", `{"servers":["a","b"]}`,
	}, &stdout, &stderr)
	require.NoError(t, err)

	var resp struct {
		Result struct {
			Nodes []json.RawMessage `json:"nodes"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Len(t, resp.Result.Nodes, 6)
}

func TestRun_ConfigLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stepwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_sort_values: 2\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", path, "-algo", "bubble", "-input", "3 2 1"}, &stdout, &stderr)
	assert.ErrorIs(t, err, engine.ErrBadInput)
	require.NoError(t, run(context.Background(), []string{"-config", path, "-algo", "bubble", "-input", "2 1"}, &stdout, &stderr))
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	ctx := context.Background()

	assert.Error(t, run(ctx, nil, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"-algo", "kmp", "-format", "xml"}, &stdout, &stderr))
	assert.ErrorIs(t, run(ctx, []string{"-algo", "nope", "-input", "x"}, &stdout, &stderr), engine.ErrUnknownAlgorithm)
	assert.ErrorIs(t, run(ctx, []string{"-algo", "kmp", "-input", "x", "-params", "{"}, &stdout, &stderr), engine.ErrBadParams)
	assert.Error(t, run(ctx, []string{"-algo", "kmp", "-log-level", "loud"}, &stdout, &stderr))
	assert.Error(t, run(ctx, []string{"-config", "/does/not/exist.yaml", "-algo", "kmp"}, &stdout, &stderr))
}
