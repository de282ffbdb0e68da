package main

import (
	"os"

	"github.com/freegit9527/infer/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
