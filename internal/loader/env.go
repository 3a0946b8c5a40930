package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadEnv reads env-style key=value lines from the file at path.
func LoadEnv(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openErr(path, err)
	}
	defer f.Close()

	items, err := ParseEnv(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return items, nil
}

// ParseEnv parses env-style lines from r. Each line is split on the
// first "=": everything before it is the key, everything after it is
// the value (which may itself contain "="). Lines that are empty or
// whitespace-only are skipped. A non-blank line with no "=" is an
// error naming the 1-based line number.
func ParseEnv(r io.Reader) (map[string]string, error) {
	items := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: missing '=' separator", lineNo)
		}
		items[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
	}

	return items, nil
}
