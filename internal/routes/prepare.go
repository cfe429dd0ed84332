package routes

import (
	"github.com/labstack/echo/v4"

	"employee-prep/internal/controllers"
)

func RUN_PREPARE_ROUTER(api *echo.Group, prepareCtrl *controllers.PrepareController) {
	api.POST("/prepare", prepareCtrl.RunPrepare)
	api.GET("/prepare/result", prepareCtrl.DownloadResult)
}
