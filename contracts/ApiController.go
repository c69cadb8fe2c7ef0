package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	SetCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	DeleteCellAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	ClearSheetAction(c *gin.Context)
	ShrinkSheetAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
