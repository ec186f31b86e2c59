package main

import (
	"log"
	"os"

	"github.com/vikasavnish/helloservice/internal/api"
)

// Prints the service routes without starting the HTTP server
func main() {
	if err := api.PrintRoutes(os.Stdout, api.SetupRouter()); err != nil {
		log.Fatal(err)
	}
}
