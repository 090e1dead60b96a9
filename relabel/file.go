package relabel

import (
	"fmt"

	"github.com/katalvlaran/flowbench/dimacs"
)

// File reads a DIMACS file from src, relabels it, and writes the result to
// dst. The destination write is atomic (see dimacs.WriteFile): a decode or
// relabel failure leaves dst untouched.
func File(src, dst string) error {
	g, err := dimacs.ReadFile(src)
	if err != nil {
		return fmt.Errorf("relabel: %w", err)
	}
	out, err := Relabel(g)
	if err != nil {
		return err
	}
	if err = dimacs.WriteFile(out, dst); err != nil {
		return fmt.Errorf("relabel: %w", err)
	}

	return nil
}
