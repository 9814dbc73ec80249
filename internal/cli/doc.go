// Package cli wires the cobra command tree for the mealscan binary.
package cli
