//go:build !linux

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "fastkill reads the Linux process table (/proc) and is only supported on Linux.")
	os.Exit(1)
}
