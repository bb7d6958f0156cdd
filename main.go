// file: main.go
package main

import (
	"log"

	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/routes"
)

func main() {
	config.Load()

	database.Connect()
	database.MigrateTables()
	database.InitRedis()

	r := routes.SetupRouter()

	log.Println("Starting server on :" + config.C.Port)
	if err := r.Run(":" + config.C.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
