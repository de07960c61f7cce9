package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Mover relocates processed statement files. Moves are best-effort: the
// caller logs and counts failures, the source file stays discoverable at
// its original path either way.
type Mover struct {
	archiveDir      string
	unclassifiedDir string
}

func NewMover(archiveDir, unclassifiedDir string) *Mover {
	return &Mover{archiveDir: archiveDir, unclassifiedDir: unclassifiedDir}
}

// Archive moves a processed file under <archive>/YYYY/MM/ keyed by the
// statement period end. Returns the destination path.
func (m *Mover) Archive(srcPath string, periodEnd time.Time) (string, error) {
	dstDir := filepath.Join(m.archiveDir, periodEnd.Format("2006"), periodEnd.Format("01"))
	return move(srcPath, dstDir)
}

// Unclassified moves a low-confidence file into the holding area.
func (m *Mover) Unclassified(srcPath string) (string, error) {
	return move(srcPath, m.unclassifiedDir)
}

func move(srcPath, dstDir string) (string, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dstDir, err)
	}
	dstPath := filepath.Join(dstDir, filepath.Base(srcPath))

	absSrc, err := filepath.Abs(srcPath)
	if err != nil {
		return "", err
	}
	absDst, err := filepath.Abs(dstPath)
	if err != nil {
		return "", err
	}
	if absSrc == absDst {
		return dstPath, nil
	}

	if err := os.Rename(srcPath, dstPath); err != nil {
		return "", fmt.Errorf("moving %s: %w", srcPath, err)
	}
	return dstPath, nil
}
