// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package golden provides a framework for writing file-based golden tests.
//
// The primary entry-point is [Corpus]. Define a corpus in an ordinary Go
// test body and call [Corpus.Run] to execute it. A corpus can be
// "refreshed", regenerating the expectation files from the test's actual
// output, by running the test with the environment variable named by
// [Corpus].Refresh set to a glob matching the test files to regenerate.
package golden

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus: table-driven tests whose table is the
// file system.
type Corpus struct {
	// Root of the test data directory, relative to the directory of the file
	// that calls [Corpus.Run].
	Root string

	// Environment variable that switches the corpus into refresh mode.
	Refresh string

	// File extensions (without a dot) of files that define a test case.
	Extensions []string

	// Expected outputs of the test. A missing output file is treated as
	// expecting empty output.
	Outputs []Output
}

// Output is one expected output of a test case, stored alongside the test
// file with an extra extension.
type Output struct {
	Extension string
}

// Run executes the corpus. The test function runs once per test file and
// writes its results into outputs, which has the same length as
// Corpus.Outputs.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	testDir := callerDir(t)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, extn := range c.Extensions {
			if strings.HasSuffix(p, "."+extn) {
				tests = append(tests, p)
				break
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob %q in %s", refresh, c.Refresh)
		}
	}

	for _, path := range tests {
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatal("golden: error while reading test file:", err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			doRefresh := false
			if refresh != "" {
				doRefresh, _ = doublestar.PathMatch(refresh, path)
			}

			for i, output := range c.Outputs {
				outputPath := path + "." + output.Extension
				if doRefresh {
					if err := os.WriteFile(outputPath, []byte(outputs[i]), 0o600); err != nil {
						t.Error("golden: error while refreshing output:", err)
					}
					continue
				}

				want, err := os.ReadFile(outputPath)
				if err != nil && !os.IsNotExist(err) {
					t.Error("golden: error while reading expectation:", err)
					continue
				}

				if string(want) == outputs[i] {
					continue
				}
				diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(outputs[i]),
					FromFile: "want " + outputPath,
					ToFile:   "got",
					Context:  2,
				})
				if err != nil {
					diff = fmt.Sprintf("want: %q\ngot: %q", want, outputs[i])
				}
				t.Errorf("golden: mismatch for %s:\n%s", outputPath, diff)
			}
		})
	}
}

// callerDir returns the directory of the test file that called Corpus.Run.
func callerDir(t *testing.T) string {
	_, file, _, callerOK := runtime.Caller(2)
	if !callerOK {
		t.Fatal("golden: could not determine caller directory")
	}
	return filepath.Dir(file)
}
