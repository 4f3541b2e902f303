package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/rathoremon/car-repair-sub000/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
