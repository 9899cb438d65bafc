package config

import (
	"fmt"
	"os"
)

// Exitf prints a formatted message to stderr and exits with code 1. The
// raffle and keeper mains use it for flag and configuration errors, where a
// timestamped log line would only add noise.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
