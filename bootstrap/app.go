package bootstrap

import (
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	// 启动时保证查询索引就位
	mongo.CreateIndexes(app.Mongo.Database(app.Env.DBName))

	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
