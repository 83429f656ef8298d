package reporter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriverify/pkg/config"
	"agriverify/pkg/executor"
	"agriverify/pkg/target"
)

var names = []string{
	"Backend Health",
	"ML Model Status",
	"Basic Prediction",
	"Enhanced Prediction",
	"LLM Enhancement",
	"Soil Data Integration",
	"Frontend Access",
}

// resultWith builds a seven-check result where the checks named in failing fail.
func resultWith(failing ...string) *executor.ExecutionResult {
	start := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	res := &executor.ExecutionResult{
		RunID:     "3f1c2a8e-0000-4000-8000-000000000001",
		StartTime: start,
		EndTime:   start.Add(9 * time.Second),
	}
	for _, n := range names {
		r := executor.CheckResult{Name: n, Passed: true, Message: n + " ok", Duration: 120 * time.Millisecond}
		for _, f := range failing {
			if f == n {
				r.Passed = false
				r.Message = n + " Failed: 500"
				r.Error = errors.New("unexpected HTTP status: 500")
			}
		}
		res.Results = append(res.Results, r)
	}
	return res
}

func testTarget() *target.Target {
	cfg := config.Default()
	return target.New(cfg, &bytes.Buffer{})
}

func TestPrintResultAllPassed(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, true).PrintResult(resultWith())

	report := out.String()
	assert.Contains(t, report, "📊 INTEGRATION VERIFICATION RESULTS")
	assert.Contains(t, report, "Backend Health            ✅ PASS")
	assert.Contains(t, report, "Total Tests: 7")
	assert.Contains(t, report, "Passed: 7")
	assert.Contains(t, report, "Failed: 0")
	assert.Contains(t, report, "Success Rate: 100.0%")
	assert.Contains(t, report, "ALL TESTS PASSED")
	assert.Contains(t, report, "fully operational")
	assert.NotContains(t, report, "\x1b[")
}

func TestPrintResultPartialFailure(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, true).PrintResult(resultWith("Basic Prediction", "LLM Enhancement"))

	report := out.String()
	assert.Contains(t, report, "Basic Prediction          ❌ FAIL")
	assert.Contains(t, report, "   unexpected HTTP status: 500")
	assert.Contains(t, report, "Passed: 5")
	assert.Contains(t, report, "Failed: 2")
	assert.Contains(t, report, "Success Rate: 71.4%")
	assert.Contains(t, report, "INTEGRATION HAS ISSUES")
	assert.NotContains(t, report, "ALL TESTS PASSED")
}

func TestPrintResultMostlyPassed(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, true).PrintResult(resultWith("LLM Enhancement"))

	assert.Contains(t, out.String(), "Success Rate: 85.7%")
	assert.Contains(t, out.String(), "INTEGRATION MOSTLY SUCCESSFUL")
}

func TestPrintResultKeepsErrorTextValidUTF8(t *testing.T) {
	res := resultWith("LLM Enhancement")
	res.Results[4].Error = errors.New(strings.Repeat("₹", 40))
	var out bytes.Buffer
	NewConsole(&out, true).PrintResult(res)

	report := out.String()
	assert.True(t, utf8.ValidString(report))
	assert.Contains(t, report, "   "+strings.Repeat("₹", 32)+"...\n")
}

func TestPrintResultNil(t *testing.T) {
	var out bytes.Buffer
	NewConsole(&out, true).PrintResult(nil)
	assert.Equal(t, "No result available.\n", out.String())
}

func TestPrintHeader(t *testing.T) {
	var out bytes.Buffer
	tgt := testTarget()
	NewConsole(&out, true).PrintHeader(tgt, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC))

	header := out.String()
	assert.Contains(t, header, "🌾 AGRICURE INTEGRATION VERIFICATION")
	assert.Contains(t, header, "Timestamp: 2026-03-01 09:30:00")
	assert.Contains(t, header, "Run ID: "+tgt.RunID)
	assert.Contains(t, header, "Backend URL: http://127.0.0.1:8000")
	assert.Contains(t, header, "Frontend URL: http://localhost:8080")
}

func TestBuildJUnit(t *testing.T) {
	res := resultWith("Soil Data Integration")
	body, err := BuildJUnit(res, testTarget())
	require.NoError(t, err)

	doc, err := xmlquery.Parse(bytes.NewReader(body))
	require.NoError(t, err)

	suite := xmlquery.FindOne(doc, "//testsuite")
	require.NotNil(t, suite)
	assert.Equal(t, "7", suite.SelectAttr("tests"))
	assert.Equal(t, "1", suite.SelectAttr("failures"))
	assert.Equal(t, "9.000", suite.SelectAttr("time"))
	assert.Equal(t, "2026-03-01T09:30:00Z", suite.SelectAttr("timestamp"))

	runID := xmlquery.FindOne(doc, "//properties/property[@name='run_id']")
	require.NotNil(t, runID)
	assert.Equal(t, res.RunID, runID.SelectAttr("value"))

	cases := xmlquery.Find(doc, "//testcase")
	require.Len(t, cases, 7)
	assert.Equal(t, "Backend Health", cases[0].SelectAttr("name"))
	assert.Equal(t, "0.120", cases[0].SelectAttr("time"))

	failures := xmlquery.Find(doc, "//testcase/failure")
	require.Len(t, failures, 1)
	assert.Equal(t, "Soil Data Integration", failures[0].Parent.SelectAttr("name"))
	assert.Equal(t, "unexpected HTTP status: 500", failures[0].SelectAttr("message"))
	assert.Equal(t, "Soil Data Integration Failed: 500", failures[0].InnerText())
}

func TestWriteJUnit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agriverify.xml")
	require.NoError(t, WriteJUnit(path, resultWith(), testTarget()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<?xml"))

	err = WriteJUnit(filepath.Join(t.TempDir(), "missing", "dir", "out.xml"), resultWith(), testTarget())
	assert.Error(t, err)
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agriverify.prom")
	require.NoError(t, WriteMetrics(path, resultWith("Frontend Access")))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `agricure_verify_check_success{check="Backend Health"} 1`)
	assert.Contains(t, text, `agricure_verify_check_success{check="Frontend Access"} 0`)
	assert.Contains(t, text, `agricure_verify_check_duration_seconds{check="Basic Prediction"} 0.12`)
	assert.Contains(t, text, "agricure_verify_success_ratio 0.857")
	assert.Contains(t, text, "# TYPE agricure_verify_last_run_timestamp_seconds gauge")
	assert.Equal(t, 7, strings.Count(text, "agricure_verify_check_success{"))
}
