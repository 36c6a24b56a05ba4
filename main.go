package main

import (
	"os"

	"github.com/Mirakulix/GuSp-Planungs-Assistent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
