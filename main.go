package main

import (
	"os"

	"github.com/deskpet/deskpet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
