// Package writers resolves a LOG_OUTPUT destination into an io.Writer.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Destination is the kind of sink a log output string refers to
type Destination string

const (
	DestinationStdout Destination = "stdout"
	DestinationStderr Destination = "stderr"
	DestinationFile   Destination = "file"
)

const fileScheme = "file://"

// ErrUnsupportedOutput is returned for outputs that name a non-file URL scheme
var ErrUnsupportedOutput = errors.New("unsupported log output")

// ParseDestination classifies an output string. Unknown strings are treated
// as file paths unless they carry a URL scheme other than file://.
func ParseDestination(output string) (Destination, string, error) {
	switch {
	case output == "" || output == "stdout":
		return DestinationStdout, "", nil
	case output == "stderr":
		return DestinationStderr, "", nil
	case strings.HasPrefix(output, fileScheme):
		path := strings.TrimPrefix(output, fileScheme)
		if path == "" {
			return "", "", fmt.Errorf("%w: empty file path", ErrUnsupportedOutput)
		}
		return DestinationFile, path, nil
	case strings.Contains(output, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	default:
		return DestinationFile, output, nil
	}
}

// CreateWriter opens the writer for an output string:
//   - "stdout" or "" writes to os.Stdout
//   - "stderr" writes to os.Stderr
//   - "file:///path" or a bare path appends to that file, creating parent directories
func CreateWriter(output string) (io.Writer, error) {
	dest, path, err := ParseDestination(output)
	if err != nil {
		return nil, err
	}

	switch dest {
	case DestinationStdout:
		return os.Stdout, nil
	case DestinationStderr:
		return os.Stderr, nil
	default:
		return openFile(path)
	}
}

func openFile(path string) (io.Writer, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return file, nil
}
