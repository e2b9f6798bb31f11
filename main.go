package main

import (
	"os"

	"github.com/FuriLabs/obex-capabilities/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
