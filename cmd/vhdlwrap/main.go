package main

import "github.com/OpenTraceLab/vhdlwrap/cmd/vhdlwrap/cmd"

func main() {
	cmd.Execute()
}
