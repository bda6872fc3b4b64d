package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot locates the app root: MATCHBUILDER_ROOT when set, otherwise
// the first directory at or above the working directory that contains
// builder_config.yaml.
func FindRoot() (string, error) {
	if root := os.Getenv("MATCHBUILDER_ROOT"); root != "" {
		if _, err := os.Stat(root); err != nil {
			return "", fmt.Errorf("MATCHBUILDER_ROOT %q: %w", root, err)
		}
		return root, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for i := 0; i < 10; i++ {
		probe := filepath.Join(dir, "builder_config.yaml")
		if _, err := os.Stat(probe); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("cannot find app root from %q (expected to find builder_config.yaml in this dir or any parent)", cwd)
}
