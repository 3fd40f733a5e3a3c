package main

import "github.com/alignhq/align/cmd"

func main() {
	cmd.Execute()
}
