package main

import (
	_ "crypto/sha256"

	"github.com/iustin/goxattr/commands"
)

func main() {
	commands.MainCmd.Execute()
}
