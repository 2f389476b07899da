// cmd/main.go
package main

import (
	"os"
	"tokenwatch/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
