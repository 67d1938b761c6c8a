package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5t3ph/metaschema/internal/config"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

const postsSchema = `{
  "title": {"type": "string", "required": true},
  "draft": {"type": "boolean"}
}`

func createTestSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
	}
	return dir
}

// resetValidateFlags restores every flag to its default and clears the
// changed markers so flag precedence is evaluated fresh.
func resetValidateFlags(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	for _, env := range []string{config.EnvMetaKey, config.EnvMetaExtension, config.EnvMissingSchema} {
		t.Setenv(env, "")
	}

	validateCmd.InheritedFlags()
	validateCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	var stdout, stderr bytes.Buffer
	validateCmd.SetOut(&stdout)
	validateCmd.SetErr(&stderr)
	t.Cleanup(func() {
		validateCmd.SetOut(nil)
		validateCmd.SetErr(nil)
	})
	return &stdout, &stderr
}

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, validateCmd.Flags().Set(name, value))
}

func TestValidate_CleanSite(t *testing.T) {
	_, stderr := resetValidateFlags(t)
	sitePath := createTestSite(t, map[string]string{
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\nmeta:\n  title: First\n---\n# First\n",
	})

	err := runValidate(validateCmd, []string{sitePath})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "1 record(s) checked, no metadata findings")
}

func TestValidate_ReportsFindingsWithoutFailing(t *testing.T) {
	_, stderr := resetValidateFlags(t)
	setFlag(t, "color", "never")
	sitePath := createTestSite(t, map[string]string{
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\nmeta:\n  draft: \"no\"\n---\n",
	})

	err := runValidate(validateCmd, []string{sitePath})
	require.NoError(t, err)

	out := stderr.String()
	assert.Contains(t, out, "[metaschema] missing-required")
	assert.Contains(t, out, "[metaschema] type-mismatch")
	assert.NotContains(t, out, "\x1b[")
}

func TestValidate_StrictFailsOnFindings(t *testing.T) {
	resetValidateFlags(t)
	setFlag(t, "strict", "true")
	sitePath := createTestSite(t, map[string]string{
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\n---\n",
	})

	err := runValidate(validateCmd, []string{sitePath})
	require.Error(t, err)
	assert.True(t, errors.Is(err, metaschema.ErrFindingsReported))
	assert.Equal(t, metaschema.ExitFindings, metaschema.ExitCodeForError(err))
}

func TestValidate_JSONOutput(t *testing.T) {
	stdout, stderr := resetValidateFlags(t)
	setFlag(t, "json", "true")
	sitePath := createTestSite(t, map[string]string{
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\ntitle: Top\n---\n",
	})

	require.NoError(t, runValidate(validateCmd, []string{sitePath}))
	assert.NotContains(t, stderr.String(), "[metaschema]")

	var findings []metaschema.Finding
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &findings))
	require.Len(t, findings, 2)
	assert.Equal(t, metaschema.FindingMissingRequired, findings[0].Kind)
	assert.Equal(t, metaschema.FindingMisplacedKey, findings[1].Kind)
	assert.Equal(t, "./posts/first.md", findings[0].InputPath)
}

func TestValidate_BaselineRoundTrip(t *testing.T) {
	sitePath := createTestSite(t, map[string]string{
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\n---\n",
	})
	baselinePath := filepath.Join(t.TempDir(), "baseline.json")

	resetValidateFlags(t)
	setFlag(t, "write-baseline", baselinePath)
	require.NoError(t, runValidate(validateCmd, []string{sitePath}))
	_, err := os.Stat(baselinePath)
	require.NoError(t, err)

	_, stderr := resetValidateFlags(t)
	setFlag(t, "baseline", baselinePath)
	setFlag(t, "strict", "true")
	require.NoError(t, runValidate(validateCmd, []string{sitePath}))
	assert.Contains(t, stderr.String(), "1 finding(s) suppressed by baseline")
}

func TestValidate_ConfigPrecedence(t *testing.T) {
	sitePath := createTestSite(t, map[string]string{
		"metaschema.yaml":  "meta_key: fromfile\nmissing_schema: warn\n",
		"_data/posts.json": postsSchema,
		"posts/first.md":   "---\ntags: [posts]\nfromfile:\n  title: A\nfromflag:\n  title: B\n---\n",
		"notes/one.md":     "---\ntags: [notes]\n---\n",
	})

	t.Run("file", func(t *testing.T) {
		stdout, _ := resetValidateFlags(t)
		setFlag(t, "json", "true")
		require.NoError(t, runValidate(validateCmd, []string{sitePath}))

		var findings []metaschema.Finding
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &findings))
		require.Len(t, findings, 1)
		assert.Equal(t, metaschema.FindingMissingSchema, findings[0].Kind)
	})

	t.Run("env overrides file", func(t *testing.T) {
		stdout, _ := resetValidateFlags(t)
		t.Setenv(config.EnvMissingSchema, "skip")
		setFlag(t, "json", "true")
		require.NoError(t, runValidate(validateCmd, []string{sitePath}))
		assert.Equal(t, "[]", strings.TrimSpace(stdout.String()))
	})

	t.Run("flag overrides env", func(t *testing.T) {
		stdout, _ := resetValidateFlags(t)
		t.Setenv(config.EnvMetaKey, "nothing")
		setFlag(t, "meta-key", "fromflag")
		setFlag(t, "missing-schema", "skip")
		setFlag(t, "json", "true")
		require.NoError(t, runValidate(validateCmd, []string{sitePath}))
		assert.Equal(t, "[]", strings.TrimSpace(stdout.String()))
	})

	t.Run("env meta key", func(t *testing.T) {
		stdout, _ := resetValidateFlags(t)
		t.Setenv(config.EnvMetaKey, "nothing")
		setFlag(t, "missing-schema", "skip")
		setFlag(t, "json", "true")
		require.NoError(t, runValidate(validateCmd, []string{sitePath}))

		var findings []metaschema.Finding
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &findings))
		require.Len(t, findings, 1)
		assert.Equal(t, metaschema.FindingMissingRequired, findings[0].Kind)
	})
}

func TestValidate_Errors(t *testing.T) {
	t.Run("site not found", func(t *testing.T) {
		resetValidateFlags(t)
		err := runValidate(validateCmd, []string{filepath.Join(t.TempDir(), "missing")})
		assert.Equal(t, metaschema.ExitSiteNotFound, metaschema.ExitCodeForError(err))
	})

	t.Run("invalid missing-schema flag", func(t *testing.T) {
		resetValidateFlags(t)
		setFlag(t, "missing-schema", "explode")
		err := runValidate(validateCmd, []string{t.TempDir()})
		assert.Equal(t, metaschema.ExitConfigError, metaschema.ExitCodeForError(err))
	})

	t.Run("invalid color flag", func(t *testing.T) {
		resetValidateFlags(t)
		setFlag(t, "color", "rainbow")
		err := runValidate(validateCmd, []string{t.TempDir()})
		assert.Equal(t, metaschema.ExitConfigError, metaschema.ExitCodeForError(err))
	})

	t.Run("malformed meta file", func(t *testing.T) {
		resetValidateFlags(t)
		sitePath := createTestSite(t, map[string]string{
			"posts/first.meta": `{"title": }`,
			"posts/first.md":   "# First",
		})
		err := runValidate(validateCmd, []string{sitePath})
		assert.Equal(t, metaschema.ExitMalformedInput, metaschema.ExitCodeForError(err))
	})

	t.Run("invalid config file", func(t *testing.T) {
		resetValidateFlags(t)
		sitePath := createTestSite(t, map[string]string{
			"metaschema.yaml": "meta_key: [unclosed",
		})
		err := runValidate(validateCmd, []string{sitePath})
		assert.Equal(t, metaschema.ExitConfigError, metaschema.ExitCodeForError(err))
	})
}
