package main

import (
	"log"

	"github.com/interpretive-systems/delog/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("delog: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
