package main

import (
	"os"

	"github.com/w-utter/realsense-go/cmd/rs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
