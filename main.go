package main

import (
	"log"
	"net/http"
	"os"

	"github.com/nandasafiq/go-storefront/app/cmd"
	"github.com/nandasafiq/go-storefront/app/configs"
	"github.com/nandasafiq/go-storefront/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	router, err := routes.NewRouter(db)
	if err != nil {
		log.Fatal("Failed to build router:", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to start the server:", err)
	}

}
