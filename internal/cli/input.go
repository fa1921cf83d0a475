package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// ReadPathList reads one path per line until an empty line or EOF.
func ReadPathList(r io.Reader) ([]string, error) {
	var paths []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		paths = append(paths, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read path list")
	}
	return paths, nil
}
