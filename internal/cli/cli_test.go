// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-markdo/internal/client"
	"github.com/MKhiriev/go-markdo/internal/config"
	"github.com/MKhiriev/go-markdo/internal/logger"
	"github.com/MKhiriev/go-markdo/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type env struct {
	dir     string
	dsn     string
	created int
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return &env{dir: dir, dsn: filepath.Join(dir, "markdo.db")}
}

func (e *env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	factory := func(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, _ *logger.Logger) (*client.App, error) {
		e.created++
		return client.NewApp(ctx, cfg, info, logger.Nop())
	}
	cmd := newRootCommand(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), factory)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"-d", e.dsn, "--log-file", filepath.Join(e.dir, "test.log")}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const bundle = `{"version":1,"rules":[
  {"id":"r1","type":"KEYWORD","matcher":"Week","replacement":"W","enabled":true,"ignoreCase":false,"note":"weeks","createdAtEpochMs":1},
  {"id":"r2","type":"REGEX","matcher":"\\d+","replacement":"#","enabled":false,"ignoreCase":true,"note":"","createdAtEpochMs":2}
]}`

// ── version ───────────────────────────────────────────────────────────────────

func TestVersion_SkipsApp(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Build version: 1.2.3")
	assert.Contains(t, out, "Build commit: abc123")
	assert.Zero(t, e.created)
	_, statErr := os.Stat(e.dsn)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersion_Unset(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand(models.AppBuildInfo{}, nil)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Build version: N/A")
}

// ── rules ─────────────────────────────────────────────────────────────────────

func TestRules_ImportRequiresYes(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, bundle, "rules", "import", "-")
	assert.ErrorIs(t, err, ErrImportNotConfirmed)
}

func TestRules_ImportListExport(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, bundle, "rules", "import", "-", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 rules")

	out, err = e.run(t, "", "rules", "list")
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "r1"), strings.Index(out, "r2"))
	assert.Contains(t, out, "weeks")

	exported := filepath.Join(e.dir, "rules.json")
	_, err = e.run(t, "", "rules", "export", "--out", exported)
	require.NoError(t, err)

	raw, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"version": 1`)
	assert.Contains(t, string(raw), `"id": "r2"`)
	assert.Equal(t, 3, e.created)
}

func TestRules_ImportFromFile(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.dir, "in.json")
	require.NoError(t, os.WriteFile(path, []byte(bundle), 0o600))

	out, err := e.run(t, "", "rules", "import", path, "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 rules")
}

func TestRules_ImportRejectsGarbage(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "not json", "rules", "import", "-", "--yes")
	assert.Error(t, err)
}

func TestRules_Enabled(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "rules", "enabled")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	_, err = e.run(t, "", "rules", "enabled", "false")
	require.NoError(t, err)

	out, err = e.run(t, "", "rules", "enabled")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestRules_EnabledInvalid(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "rules", "enabled", "maybe")
	assert.Error(t, err)
}

// ── accounts ──────────────────────────────────────────────────────────────────

func TestAccounts_ListEmpty(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "", "accounts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "LAST LOGIN")
	assert.NotContains(t, out, "|")
}

func TestAccounts_RemoveUnknown(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "accounts", "remove", "moodle.example.edu|nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "active or unknown")
}

func TestAccounts_ClearNeedsConfirmation(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "accounts", "clear")
	assert.ErrorIs(t, err, ErrClearNotConfirmed)

	out, err := e.run(t, "", "accounts", "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "no remembered accounts")
}

// ── config ────────────────────────────────────────────────────────────────────

func TestRoot_InvalidConfig(t *testing.T) {
	e := newEnv(t)

	_, err := e.run(t, "", "--scheme", "ftp", "rules", "list")
	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
	assert.Zero(t, e.created)
}
