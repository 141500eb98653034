package main

import "github.com/dotcommander/scorekit/cmd"

func main() {
	cmd.Execute()
}
