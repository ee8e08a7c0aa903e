package main

import (
	"github.com/gi4nks/procstatus/cmd/commands"
)

func main() {
	commands.Execute()
}
