package sim

import "os"

// OpenOutput opens path for writing, with "-" meaning stdout.
func OpenOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
}
