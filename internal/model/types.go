package model

import "errors"

// Category is a bug type in the benchmark's vocabulary. Ground-truth logs and
// normalized tool reports both use these values.
type Category string

const (
	CategoryOverflowUnderflow   Category = "Overflow-Underflow"
	CategoryReentrancy          Category = "Re-entrancy"
	CategoryTimestampDependency Category = "Timestamp-Dependency"
)

// Recognized lists the categories the benchmark can score against.
func Recognized() []Category {
	return []Category{CategoryOverflowUnderflow, CategoryReentrancy, CategoryTimestampDependency}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Recognized() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", ErrUnsupportedCategory
}

var (
	ErrNotFound            = errors.New("file not found")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrUnsupportedCategory = errors.New("unsupported bug category")
)

// InjectedBug is one ground-truth record from a bug log. Identity is
// structural; the struct is comparable and used as a set key by the
// classifier. Its inclusive span is [StartLine, StartLine+Length].
type InjectedBug struct {
	Category  Category `json:"category"`
	StartLine int      `json:"startLine"`
	Length    int      `json:"length"`
}

func (b InjectedBug) EndLine() int { return b.StartLine + b.Length }

func (b InjectedBug) Contains(line int) bool {
	return line >= b.StartLine && line <= b.EndLine()
}

// ReportedBug is one finding from an analysis tool's result file, after key
// and category normalization. Extra keeps the tool-specific fields for the
// raw dump; the classifier ignores them.
type ReportedBug struct {
	Category Category          `json:"category"`
	Line     int               `json:"line"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Misclass records a reported bug that hit an injected bug's span but named
// the wrong category.
type Misclass struct {
	TrueCategory Category    `json:"trueCategory"`
	Bug          ReportedBug `json:"bug"`
}

type Stats struct {
	Injected int `json:"injected"`
	FP       int `json:"fp"`
	TP       int `json:"tp"`
	TPRange  int `json:"tpRange"`
	FN       int `json:"fn"`
	Miscls   int `json:"misclassified"`
}

// Report is the classification result for one (bug log, tool report) pair.
type Report struct {
	Stats        Stats         `json:"stats"`
	FP           []ReportedBug `json:"falsePositives"`
	TP           []ReportedBug `json:"truePositives"`
	FN           []InjectedBug `json:"falseNegatives"`
	Miscls       []Misclass    `json:"misclassified"`
	LogPath      string        `json:"logPath"`
	ContractPath string        `json:"contractPath"`
}
