package controller_app

import (
	"net/http"

	"github.com/Super-Badmen-Viper/NineShelf/api/controller"
	"github.com/Super-Badmen-Viper/NineShelf/domain/domain_app/domain_app_config"
	"github.com/gin-gonic/gin"
)

type AppConfigController struct {
	AppConfigUsecase       domain_app_config.AppConfigUsecase
	AppFolderConfigUsecase domain_app_config.AppFolderConfigUsecase
}

func NewAppConfigController(
	appConfigUsecase domain_app_config.AppConfigUsecase,
	appFolderConfigUsecase domain_app_config.AppFolderConfigUsecase,
) *AppConfigController {
	return &AppConfigController{
		AppConfigUsecase:       appConfigUsecase,
		AppFolderConfigUsecase: appFolderConfigUsecase,
	}
}

func (c *AppConfigController) GetAppConfigs(ctx *gin.Context) {
	configs, err := c.AppConfigUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "configs", configs, len(configs))
}

func (c *AppConfigController) ReplaceAppConfigs(ctx *gin.Context) {
	var configs []*domain_app_config.AppConfig
	if err := ctx.ShouldBindJSON(&configs); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := c.AppConfigUsecase.ReplaceAll(ctx.Request.Context(), configs); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "configs", configs, len(configs))
}

func (c *AppConfigController) GetFolderConfigs(ctx *gin.Context) {
	configs, err := c.AppFolderConfigUsecase.GetAll(ctx.Request.Context())
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "folders", configs, len(configs))
}

func (c *AppConfigController) ReplaceFolderConfigs(ctx *gin.Context) {
	var configs []*domain_app_config.AppFolderConfig
	if err := ctx.ShouldBindJSON(&configs); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	for _, config := range configs {
		if config.FolderType != "ebook" && config.FolderType != "audiobook" {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_FOLDER_TYPE", "folder_type必须是ebook或audiobook")
			return
		}
	}

	if err := c.AppFolderConfigUsecase.ReplaceAll(ctx.Request.Context(), configs); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "folders", configs, len(configs))
}
