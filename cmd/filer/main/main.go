package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/filer/cmd/filer"
	"github.com/arthur-debert/filer/pkg/style"
)

func main() {
	rootCmd := filer.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
