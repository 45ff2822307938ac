package main

import (
	"os"

	"github.com/asterixkit/getafix/troubadix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
