package main

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"sparseSheet/contracts"
)

const ApiVersion = "v1"

const subscribePath = "subscribe"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.POST("/cells/:address/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.POST("/cells/:address", controller.SetCellAction)
	apiRouterGroup.GET("/cells/:address", controller.GetCellAction)
	apiRouterGroup.DELETE("/cells/:address", controller.DeleteCellAction)

	apiRouterGroup.GET("/sheet", controller.GetSheetAction)
	apiRouterGroup.DELETE("/sheet", controller.ClearSheetAction)
	apiRouterGroup.POST("/sheet/shrink", controller.ShrinkSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
