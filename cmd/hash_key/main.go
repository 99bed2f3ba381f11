package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/hash_key <api-key>")
		os.Exit(2)
	}
	key := strings.TrimSpace(os.Args[1])
	if len(key) < 12 {
		log.Fatal("api key too short (min 12)")
	}
	h, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	fmt.Printf("API_KEY_HASH=%s\n", h)
}
