//
// Chatmark Markdown Renderer, based on Blackfriday
// Available at http://github.com/ichingweb/chatmark
//
// Copyright © 2011 Russ Ross <russ@russross.com>.
// Distributed under the Simplified BSD License.
// See README.md for details.
//

//
// Helper functions for unit testing
//

package chatmark

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

type TestParams struct {
	HTMLFlags
	HTMLRendererParameters
}

func runMarkdown(input string, params TestParams) string {
	return NewHTMLRenderer(params.HTMLFlags, params.HTMLRendererParameters).Render(input)
}

// doTests runs input/expected pairs through the default flags.
func doTests(t *testing.T, tests []string) {
	t.Helper()
	doTestsParam(t, tests, TestParams{HTMLFlags: CommonHTMLFlags})
}

func doTestsParam(t *testing.T, tests []string, params TestParams) {
	t.Helper()
	// catch and report panics
	var candidate string
	defer func() {
		if err := recover(); err != nil {
			t.Errorf("\npanic while processing [%#v]: %s\n", candidate, err)
		}
	}()

	for i := 0; i+1 < len(tests); i += 2 {
		input := tests[i]
		candidate = input
		expected := tests[i+1]
		actual := runMarkdown(candidate, params)
		if actual != expected {
			t.Errorf("\nInput   [%#v]\nExpected[%#v]\nActual  [%#v]\n%s",
				candidate, expected, actual, tagDiff(expected, actual))
		}

		// now test every substring to stress test bounds checking
		if !testing.Short() {
			for start := 0; start < len(input); start++ {
				for end := start + 1; end <= len(input); end++ {
					candidate = input[start:end]
					runMarkdown(candidate, params)
				}
			}
		}
	}
}

// tagDiff returns a unified diff of two HTML strings, one tag per line.
func tagDiff(expected, actual string) string {
	split := func(s string) []string {
		return difflib.SplitLines(strings.ReplaceAll(s, "><", ">\n<"))
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        split(expected),
		B:        split(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
