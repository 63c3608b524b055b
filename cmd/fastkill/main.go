//go:build linux

package main

import (
	"os"

	"github.com/asidko/fastkill/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
