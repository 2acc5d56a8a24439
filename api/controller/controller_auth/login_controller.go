package controller_auth

import (
	"net/http"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/bootstrap"
	"github.com/Super-Badmen-Viper/NineShelf/domain"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginController struct {
	LoginUsecase domain.LoginUsecase
	Env          *bootstrap.Env
}

func (lc *LoginController) Login(ctx *gin.Context) {
	var request domain.LoginRequest

	if err := ctx.ShouldBind(&request); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := lc.LoginUsecase.GetUserByEmail(ctx, request.Email)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "USER_NOT_FOUND", "user not found with the given email")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials")
		return
	}

	accessToken, err := lc.LoginUsecase.CreateAccessToken(&user, lc.Env.AccessTokenSecret, lc.Env.AccessTokenExpiryHour)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	refreshToken, err := lc.LoginUsecase.CreateRefreshToken(&user, lc.Env.RefreshTokenSecret, lc.Env.RefreshTokenExpiryHour)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	loginResponse := domain.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}

	ctx.JSON(http.StatusOK, loginResponse)
}
