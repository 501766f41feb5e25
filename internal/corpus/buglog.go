package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// LoadBugLog reads a SolidiFI BugLog_<idx>.csv and returns its injected bugs
// sorted ascending by start line. The category is inferred from the parent
// directory name; each log holds a single bug type, so no per-record category
// column is consulted.
func LoadBugLog(path string) ([]model.InjectedBug, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, model.ErrNotFound)
		}
		return nil, err
	}
	defer f.Close()

	category := model.Category(CategoryFromLog(path))

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, model.ErrMalformedRecord)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty log: %w", path, model.ErrMalformedRecord)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = model.CanonicalKey(strings.TrimSpace(strings.ToLower(h)))
	}

	var bugs []model.InjectedBug
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				rec[h] = strings.TrimSpace(row[i])
			}
		}
		start, err := requireInt(rec, model.KeyLine)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		length, err := requireInt(rec, model.KeyLength)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		bugs = append(bugs, model.InjectedBug{Category: category, StartLine: start, Length: length})
	}
	sort.SliceStable(bugs, func(i, j int) bool { return bugs[i].StartLine < bugs[j].StartLine })
	return bugs, nil
}

func requireInt(rec map[string]string, key string) (int, error) {
	v, ok := rec[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q: %w", key, model.ErrMalformedRecord)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("field %q = %q: %w", key, v, model.ErrMalformedRecord)
	}
	return n, nil
}

// CategoryFromLog returns the bug type a log file scores against: the name of
// its enclosing directory.
func CategoryFromLog(path string) string {
	return filepath.Base(filepath.Dir(path))
}
