package main

import "github.com/appforge/appforge/cmd/appforge/commands"

func main() {
	commands.Execute()
}
