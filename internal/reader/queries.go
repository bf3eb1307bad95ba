package reader

import (
	"fmt"
	"os"
)

// ReadQueryFile returns the full text of a query file.
//
// Failure is advisory: callers log it and continue with no queries.
func ReadQueryFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("query file %s could not be found: %w", path, err)
		}
		return "", fmt.Errorf("query file %s could not be read: %w", path, err)
	}
	return string(data), nil
}
