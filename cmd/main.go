package main

import (
	"os"

	"github.com/kishanbharadwajmg/Smart-Diet-Planner/config"
	"github.com/kishanbharadwajmg/Smart-Diet-Planner/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
