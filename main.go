package main

import "github.com/theirongolddev/burndown/cmd"

func main() {
	cmd.Execute()
}
