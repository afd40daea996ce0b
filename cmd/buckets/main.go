package main

import (
	"context"
	"fmt"
	"os"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
)

func main() {
	if err := Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
