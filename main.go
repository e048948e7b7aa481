package main

import (
	"os"

	"camp-activity-system/cmd/seed"
	"camp-activity-system/cmd/server"
	"camp-activity-system/internal/global/database"
	"camp-activity-system/tools"
)

func main() {
	server.Init()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		tools.PanicOnErr(seed.Run(database.DB))
		return
	}

	server.Run()
}
