package preconditions

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// ValidateConfigFile checks that a robot file exists and is readable
func ValidateConfigFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file %s: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	if !isYamlFile(path) {
		return fmt.Errorf("%s is not a YAML file (must end in .yaml or .yml)", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read file %s: %w", path, err)
	}
	file.Close()

	return nil
}

func isYamlFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}

// ValidateNumbers checks that every command line value is finite
func ValidateNumbers(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: value %d is not a finite number", name, i+1)
		}
	}
	return nil
}

// ValidateCount checks that a list of command line values has an accepted length
func ValidateCount(name string, values []float64, accepted ...int) error {
	for _, n := range accepted {
		if len(values) == n {
			return nil
		}
	}
	want := make([]string, len(accepted))
	for i, n := range accepted {
		want[i] = fmt.Sprint(n)
	}
	return fmt.Errorf("%s: expected %s values, got %d", name, strings.Join(want, " or "), len(values))
}
