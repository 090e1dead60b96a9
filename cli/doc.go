// Package cli provides the shared plumbing of the flowbench command-line
// tools: layered configuration (defaults → flowbench.toml → FLOWBENCH_* env →
// flags), a leveled console logger, and a directory watcher for batch
// relabeling of DIMACS instance files.
package cli
