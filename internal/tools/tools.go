package tools

import (
	"fmt"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// CategoryMapping translates raw category labels emitted by analysis tools
// into the benchmark's vocabulary. Labels absent from the table pass through
// verbatim, which leaves them out of scope for every log's evaluation rather
// than silently folding them into a recognized category.
var CategoryMapping = map[string]model.Category{
	"ARITHMETIC_UNDERFLOW": model.CategoryOverflowUnderflow,
	"ARITHMETIC_OVERFLOW":  model.CategoryOverflowUnderflow,
	"DANGEROUS_AND:EVM_INTEGER_OVERFLOW_SUBTYPE": model.CategoryOverflowUnderflow,
	"REENTRANCY":            model.CategoryReentrancy,
	"TIME_STAMP_DEPENDENCY": model.CategoryTimestampDependency,
}

// MapCategory normalizes one raw tool label.
func MapCategory(raw string) model.Category {
	if c, ok := CategoryMapping[raw]; ok {
		return c
	}
	return model.Category(raw)
}

// RawLabels returns the tool labels that map to a benchmark category.
func RawLabels(c model.Category) []string {
	var out []string
	for raw, mapped := range CategoryMapping {
		if mapped == c {
			out = append(out, raw)
		}
	}
	return out
}

// Load parses a tool's result file into normalized reported bugs, sorted
// ascending by line.
func Load(tool, path string) ([]model.ReportedBug, error) {
	switch tool {
	case "smartfuzz":
		return LoadSmartFuzz(path)
	default:
		return nil, fmt.Errorf("unknown tool %q", tool)
	}
}
