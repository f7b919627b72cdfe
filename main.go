package main

import "github.com/notargets/gopanel/cmd"

func main() {
	cmd.Execute()
}
