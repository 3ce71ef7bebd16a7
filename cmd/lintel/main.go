package main

import (
	"os"

	"github.com/apex/log"

	"github.com/lintelhq/lintel-cli/cmd/lintel/app"
)

func main() {
	err := app.New().Run(os.Args)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
}
