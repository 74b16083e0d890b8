// Command certcheck scores academic certificates for signs of forgery.
package main

import (
	"os"

	"github.com/custodia-labs/certcheck/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
