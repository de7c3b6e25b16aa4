package main

import "bookhive/cmd/cli/command"

func main() {
	command.Execute()
}
