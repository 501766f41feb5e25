package tools

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// LoadSmartFuzz parses a Smart Fuzz result file: a JSON object mapping
// arbitrary keys to bug records. Record keys are canonicalized, the raw
// category label is translated through CategoryMapping, and the remaining
// fields are kept in Extra for the raw dump.
func LoadSmartFuzz(path string) ([]model.ReportedBug, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, model.ErrNotFound)
		}
		return nil, err
	}
	var records map[string]map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, model.ErrMalformedRecord)
	}

	var bugs []model.ReportedBug
	for key, raw := range records {
		rec := make(map[string]string, len(raw))
		for k, v := range raw {
			rec[model.CanonicalKey(k)] = stringify(v)
		}
		bug, err := bugFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s: record %q: %w", path, key, err)
		}
		bugs = append(bugs, bug)
	}
	sort.SliceStable(bugs, func(i, j int) bool { return bugs[i].Line < bugs[j].Line })
	return bugs, nil
}

func bugFromRecord(rec map[string]string) (model.ReportedBug, error) {
	line, ok := rec[model.KeyLine]
	if !ok {
		return model.ReportedBug{}, fmt.Errorf("missing field %q: %w", model.KeyLine, model.ErrMalformedRecord)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return model.ReportedBug{}, fmt.Errorf("field %q = %q: %w", model.KeyLine, line, model.ErrMalformedRecord)
	}
	cat, ok := rec[model.KeyBugType]
	if !ok {
		return model.ReportedBug{}, fmt.Errorf("missing field %q: %w", model.KeyBugType, model.ErrMalformedRecord)
	}
	extra := make(map[string]string)
	for k, v := range rec {
		if k != model.KeyLine && k != model.KeyBugType {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		extra = nil
	}
	return model.ReportedBug{Category: MapCategory(cat), Line: n, Extra: extra}, nil
}

// stringify flattens a decoded JSON value. Numbers decode as float64; whole
// ones must render without an exponent or trailing zeros so line numbers
// survive the round trip.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
