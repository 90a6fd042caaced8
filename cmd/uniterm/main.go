package main

import (
	"context"
	"fmt"
	"os"

	"github.com/doeshing/uniterm/internal/infrastructure/cli"
)

func main() {
	root := cli.NewRootCmd()
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
