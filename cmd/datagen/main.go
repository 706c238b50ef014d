package main

import (
	"os"

	"WeightLossDataGenerator/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
