package main

import (
	"github.com/mkessler/gradefile/cmd/gradefile/cmd"
)

func main() {
	cmd.Execute()
}
