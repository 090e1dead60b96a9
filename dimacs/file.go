package dimacs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/flowbench/netgraph"
)

// ReadFile opens path and decodes it as a DIMACS "max" file.
func ReadFile(path string) (*netgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %s: %w", path, err)
	}

	return g, nil
}

// WriteFile encodes g to path atomically: the stream goes to a uniquely named
// temporary file in the destination directory, which is renamed over path
// only after a fully successful encode. A failure never leaves a half-written
// destination behind; the temporary file is removed on any error.
func WriteFile(g *netgraph.Graph, path string) error {
	tmp := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("dimacs: create %s: %w", tmp, err)
	}

	if err = Encode(g, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("dimacs: write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("dimacs: close %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("dimacs: finalize %s: %w", path, err)
	}

	return nil
}
