package main

import "github.com/snakearcade/engine/cmd/snake/commands"

func main() {
	commands.Execute()
}
