package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	ContractsDir string `json:"contractsDir"`
	ReportsDir   string `json:"reportsDir"`
	Tool         string `json:"tool"`
}

func Default() Config {
	return Config{
		ContractsDir: "buggy_contracts",
		ReportsDir:   "results/smart-fuzz/analyzed_buggy_contracts",
		Tool:         "smartfuzz",
	}
}

// Load searches upwards from startDir for a .solidifi-bench.json and merges
// it over the defaults. A missing file is not an error.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	for {
		candidate := filepath.Join(dir, ".solidifi-bench.json")
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
