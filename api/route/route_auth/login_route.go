package route_auth

import (
	"time"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller/controller_auth"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/Super-Badmen-Viper/NineShelf/mongo"
	"github.com/Super-Badmen-Viper/NineShelf/repository/repository_auth"
	"github.com/Super-Badmen-Viper/NineShelf/usecase/usecase_auth"
	"github.com/gin-gonic/gin"
)

func NewLoginRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository_auth.NewUserRepository(db, domain.CollectionUser)
	lc := controller_auth.LoginController{
		LoginUsecase: usecase_auth.NewLoginUsecase(ur, timeout),
		Env:          env,
	}
	group.POST("/login", lc.Login)
}
