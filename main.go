package main

import "github.com/notargets/gohydro/cmd"

func main() {
	cmd.Execute()
}
