package main

import (
	"os"

	"github.com/ashwin/studytrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
