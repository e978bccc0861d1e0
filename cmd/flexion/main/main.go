package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/flexion/cmd/flexion"
	"github.com/arthur-debert/flexion/pkg/style"
)

func main() {
	rootCmd := flexion.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
