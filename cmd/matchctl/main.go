package main

import (
	"fmt"
	"os"

	"github.com/fadilmartias/cv-matcher/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
