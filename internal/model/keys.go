package model

// Canonical record keys. Bug logs and tool reports use several spellings for
// the same fields; both loaders rewrite keys to these before extracting.
const (
	KeyLine    = "linenum"
	KeyBugType = "bugtype"
	KeyLength  = "length"
)

var keyReplacement = map[string]string{
	"loc":         KeyLine,
	"line_number": KeyLine,
	"bug type":    KeyBugType,
	"bug_type":    KeyBugType,
}

// CanonicalKey maps a raw record key to its canonical spelling, or returns it
// unchanged when no replacement applies.
func CanonicalKey(k string) string {
	if r, ok := keyReplacement[k]; ok {
		return r
	}
	return k
}

// NormalizeKeys rewrites every key of a record through CanonicalKey.
func NormalizeKeys(rec map[string]string) map[string]string {
	out := make(map[string]string, len(rec))
	for k, v := range rec {
		out[CanonicalKey(k)] = v
	}
	return out
}
