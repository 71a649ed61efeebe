// Package batch runs queued conversation test cases back to back and
// saves an evaluation record for each.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// TestCase supplies the variable parts of one batch session: the
// discussion topic and one description per roster participant, in
// roster order.
type TestCase struct {
	Topic        string   `json:"topic"`
	Descriptions []string `json:"descriptions"`
}

type testCaseFile struct {
	Cases []TestCase `json:"cases"`
}

// LoadTestCases reads the whole test-case file at once.
func LoadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test cases: %w", err)
	}

	var file testCaseFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse test cases %s: %w", path, err)
	}
	if len(file.Cases) == 0 {
		return nil, fmt.Errorf("test case file %s contains no cases", path)
	}
	return file.Cases, nil
}
