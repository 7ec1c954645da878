// cmd/hashpass/main.go
// Prints a bcrypt hash for PLAYER_PASSWORD_HASH.
//
// Usage:
//
//	go run ./cmd/hashpass -password testing
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/vunguyen10111995/horse-racing-game/handlers"
)

func main() {
	password := flag.String("password", "", "plain-text password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	hash, err := handlers.HashPassword(*password)
	if err != nil {
		log.Fatal("bcrypt:", err)
	}

	fmt.Printf("PLAYER_PASSWORD_HASH=%s\n", hash)
}
