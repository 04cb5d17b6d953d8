package main

import "github.com/dnorberg/vidsum/cmd"

func main() {
	cmd.Execute()
}
