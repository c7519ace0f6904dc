package main

import (
	"os"

	"github.com/Dan9191/calc-service/cmd/calc/commands"

	_ "time/tzdata"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
