package main

import "github.com/prehook/prehook/internal/cmd"

func main() {
	cmd.Execute()
}
