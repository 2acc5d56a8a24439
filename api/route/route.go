package route

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/middleware"
	"github.com/Super-Badmen-Viper/NineShelf/api/route/route_app"
	"github.com/Super-Badmen-Viper/NineShelf/api/route/route_auth"
	"github.com/Super-Badmen-Viper/NineShelf/api/route/route_library/scene_book_api_route"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/gin-gonic/gin"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("")
	// 公开接口
	route_auth.NewSignupRouter(env, timeout, db, publicRouter)
	route_auth.NewLoginRouter(env, timeout, db, publicRouter)
	route_auth.NewRefreshTokenRouter(env, timeout, db, publicRouter)

	protectedRouter := gin.Group("/api")
	// 受保护接口
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))

	scene_book_api_route.NewBookRouter(timeout, db, protectedRouter)
	scene_book_api_route.NewShelfRouter(timeout, db, protectedRouter)
	scene_book_api_route.NewProgressRouter(timeout, db, protectedRouter)
	scene_book_api_route.NewRecommendRouter(env, timeout, db, protectedRouter)
	scene_book_api_route.NewImportRouter(env, db, protectedRouter)
	route_app.NewAppConfigRouter(timeout, db, protectedRouter)
}
