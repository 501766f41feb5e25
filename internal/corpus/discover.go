package corpus

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/sbip-sg/SolidiFI-benchmark/internal/model"
)

// FindBugLogs returns the BugLog_*.csv files for one category, ordered by
// their numeric index.
func FindBugLogs(root string, category model.Category) ([]string, error) {
	logs, err := doublestar.FilepathGlob(filepath.Join(root, string(category), "BugLog_*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Slice(logs, func(i, j int) bool {
		a, _ := IndexFromFile(logs[i])
		b, _ := IndexFromFile(logs[j])
		return a < b
	})
	return logs, nil
}

// FindReports returns the tool result files for one category. Tools that do
// not group results by bug type drop their reports directly under root, so
// the flat layout is the fallback.
func FindReports(root string, category model.Category) ([]string, error) {
	reports, err := doublestar.FilepathGlob(filepath.Join(root, string(category), "*.json"))
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		reports, err = doublestar.FilepathGlob(filepath.Join(root, "*.json"))
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(reports)
	return reports, nil
}

// IndexFromFile extracts the trailing _<idx> number from a corpus filename,
// e.g. BugLog_42.csv or buggy_42.sol -> 42.
func IndexFromFile(path string) (int, error) {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	u := strings.LastIndexByte(name, '_')
	if u < 0 {
		return 0, fmt.Errorf("no index in filename %q", filepath.Base(path))
	}
	idx, err := strconv.Atoi(name[u+1:])
	if err != nil {
		return 0, fmt.Errorf("no index in filename %q", filepath.Base(path))
	}
	return idx, nil
}

// ReportByIndex finds the report file paired with a bug log index: the first
// file whose basename contains "_<idx>.". Returns "" when the tool produced
// no report for that contract.
func ReportByIndex(reports []string, idx int) string {
	marker := fmt.Sprintf("_%d.", idx)
	for _, r := range reports {
		if strings.Contains(filepath.Base(r), marker) {
			return r
		}
	}
	return ""
}

// ContractPath returns the buggy contract a bug log describes: the sibling
// buggy_<idx>.sol.
func ContractPath(logPath string) string {
	idx, err := IndexFromFile(logPath)
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(logPath), fmt.Sprintf("buggy_%d.sol", idx))
}
