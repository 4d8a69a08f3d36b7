package main

import (
	"github.com/joho/godotenv"

	"github.com/nulln0ne/suilipse/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
