package main

import (
	"log"

	"tableflip.dev/reignite/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("reignite: %v", err)
	}
}
