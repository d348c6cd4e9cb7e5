package main

import (
	"os"

	"github.com/arloliu/pgarray/cmd/pgarray/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
