package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/xssrisk/internal/cli"
	"github.com/raysh454/xssrisk/internal/model"
	"github.com/raysh454/xssrisk/internal/testutil"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestVersion(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "xssrisk v1.0.0\n", out)
}

func TestAnalyze_StdinJSON(t *testing.T) {
	t.Parallel()
	out, err := run(t, testutil.SampleReportJSON, "analyze", "--json", "--log-level", "error")
	require.NoError(t, err)

	var res model.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 30, res.RiskScore)
	assert.Equal(t, model.VerdictMediumRisk, res.Verdict)
}

func TestAnalyze_FileTable(t *testing.T) {
	t.Parallel()
	p := writeFile(t, t.TempDir(), "report.json", testutil.SampleReportJSON)

	out, err := run(t, "", "analyze", p, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Analysis of 1 evidence items from https://example.com/page.")
	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "eval(location.hash.slice(1))")
}

func TestAnalyze_InvalidReport(t *testing.T) {
	t.Parallel()
	_, err := run(t, `{"metadata": {"url": ""}, "evidence": []}`, "analyze", "--log-level", "error")
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))

	_, err = run(t, `{nope`, "analyze", "--log-level", "error")
	assert.Error(t, err)
}

func TestDiff_JSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"metadata": {"url": "https://example.com/page", "timestamp": "t", "evidenceCount": 0}, "evidence": []}`)
	head := writeFile(t, dir, "head.json", testutil.SampleReportJSON)

	out, err := run(t, "", "diff", base, head, "--json", "--log-level", "error")
	require.NoError(t, err)

	var d model.AssessmentDiff
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, 30, d.ScoreDelta)
	assert.Equal(t, model.VerdictSafe, d.VerdictBase)
	assert.Equal(t, model.VerdictMediumRisk, d.VerdictHead)

	out, err = run(t, "", "diff", base, head, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Score: 0 -> 30 (+30)")
}

func TestConfigFile_Invalid(t *testing.T) {
	t.Parallel()
	p := writeFile(t, t.TempDir(), "xssrisk.yaml", "log:\n  format: xml\n")

	_, err := run(t, testutil.SampleReportJSON, "analyze", "--config", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestAnalyze_EnhancedViaEnvironment(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-3.5-turbo","choices":[{"index":0,"message":{"role":"assistant","content":"The page evaluates the URL fragment."},"finish_reason":"stop"}]}`))
	}))
	defer fake.Close()

	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("XSSRISK_OPENAI_BASE_URL", fake.URL)

	out, err := run(t, testutil.SampleReportJSON, "analyze", "--json", "--log-level", "error")
	require.NoError(t, err)

	var res model.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "The page evaluates the URL fragment.", res.Summary)
	assert.Equal(t, 30, res.RiskScore)
}
