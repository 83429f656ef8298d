package reporter

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"agriverify/pkg/executor"
	"agriverify/pkg/target"
)

type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Time       string          `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []junitProperty `xml:"properties>property"`
	Cases      []junitTestCase `xml:"testcase"`
}

type junitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	SystemOut string        `xml:"system-out,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// BuildJUnit renders result as a JUnit XML document with one testcase per check.
func BuildJUnit(result *executor.ExecutionResult, t *target.Target) ([]byte, error) {
	s := result.Summary()
	suite := junitTestSuite{
		Name:      "agricure-integration",
		Tests:     s.Total,
		Failures:  s.Failed,
		Time:      seconds(result.Duration()),
		Timestamp: result.StartTime.UTC().Format(time.RFC3339),
		Properties: []junitProperty{
			{Name: "run_id", Value: result.RunID},
			{Name: "backend_url", Value: t.BackendURL},
			{Name: "frontend_url", Value: t.FrontendURL},
		},
	}

	for _, r := range result.Results {
		tc := junitTestCase{
			Name:      r.Name,
			Classname: "agriverify",
			Time:      seconds(r.Duration),
			SystemOut: r.Message,
		}
		if !r.Passed {
			msg := r.Message
			if r.Error != nil {
				msg = r.Error.Error()
			}
			tc.Failure = &junitFailure{Message: msg, Type: "CheckFailed", Text: r.Message}
		}
		suite.Cases = append(suite.Cases, tc)
	}

	body, err := xml.MarshalIndent(junitTestSuites{Suites: []junitTestSuite{suite}}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode JUnit report: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// WriteJUnit writes the JUnit report for result to path.
func WriteJUnit(path string, result *executor.ExecutionResult, t *target.Target) error {
	body, err := BuildJUnit(result, t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write JUnit report '%s': %w", path, err)
	}
	return nil
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
