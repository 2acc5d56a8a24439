package main

import (
	"log"
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/route"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/gin-gonic/gin"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
