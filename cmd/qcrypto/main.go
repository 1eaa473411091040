package main

import (
	"log"

	"github.com/docdailey/qrand/internal/cli"
)

func main() {
	if err := cli.ExecuteCrypto(); err != nil {
		log.Fatal(err)
	}
}
