// CLI entry point for ArbiLens.
package main

import "github.com/veritaslex/arbilens/internal/interfaces/cli"

func main() {
	cli.Execute()
}
