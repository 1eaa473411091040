package main

import (
	"log"

	"github.com/docdailey/qrand/internal/cli"
)

func main() {
	if err := cli.ExecuteDice(); err != nil {
		log.Fatal(err)
	}
}
