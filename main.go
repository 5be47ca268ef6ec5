package main

import "github.com/ipahub/ipahub-cli/cmd"

func main() {
	cmd.Execute()
}
