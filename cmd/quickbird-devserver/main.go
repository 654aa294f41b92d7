// quickbird-devserver runs the in-memory mock backend on a local port,
// giving the CLI and integration tests a real HTTP surface to talk to.
package main

import (
	"log"
	"os"

	"github.com/quickbird-app/quickbird-go/internal/mockapi"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	srv := mockapi.New()
	log.Printf("mock backend listening on :%s", port)
	log.Fatal(srv.Run(":" + port))
}
