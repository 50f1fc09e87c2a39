package hierarchy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteSnapshot writes the dump of g to a timestamped text file in dir and
// returns its path. The directory is created if needed. Nothing is written
// when formatting fails.
func WriteSnapshot(g Graph, dir, label string) (string, error) {
	return writeSnapshot(g, 0, dir, label)
}

// WriteSnapshot is like the package-level WriteSnapshot but uses the
// printer's graph and depth limit.
func (p *Printer) WriteSnapshot(dir, label string) (string, error) {
	return writeSnapshot(p.graph, p.maxDepth, dir, label)
}

func writeSnapshot(g Graph, maxDepth int, dir, label string) (string, error) {
	lines, err := format(g, maxDepth)
	if err != nil {
		return "", err
	}
	text := strings.Join(lines, "\n")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", stamp, sanitizeLabel(label)))
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
