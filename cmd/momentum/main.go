// Package main is the single-binary entrypoint for Momentum, a local-first
// task tracker that rewards showing up.
package main

import "github.com/momentum-hq/momentum/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
