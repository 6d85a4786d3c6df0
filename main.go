package main

import (
	"log"

	"yashubustudio/nameval/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("nameval: %v", err)
	}
}
