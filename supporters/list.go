package supporters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// FirstSupporter returns the first line of the supporter list at path, trimmed.
// An empty file or blank first line yields "".
func FirstSupporter(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read supporter list: %w", err)
	}
	defer f.Close()

	// No line length limit; a last line without newline ends at EOF
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read supporter list %s: %w", path, err)
	}

	return strings.TrimSpace(strings.TrimPrefix(line, "\ufeff")), nil
}
