package main

import (
	"fmt"
	"os"

	"github.com/lunara-health/lunara/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
