package main

import (
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"sparseSheet/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	Address string `uri:"address" binding:"required"`
}

type GetCellQuery struct {
	Materialized bool `form:"materialized"`
}

type SetCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url"`
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	query := GetCellQuery{}
	var response *contracts.CellResponse

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindQuery(&query)
	}

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.Address, query.Materialized)
	}

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) SetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SetCellRequest{}
	var response *contracts.CellResponse

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	response, err = api.SheetRepository.SetCell(params.Address, request.Value)

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) DeleteCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	deleted := false

	err := c.ShouldBindUri(&params)
	if err == nil {
		deleted, err = api.SheetRepository.DeleteCell(params.Address)
	}

	if err == nil && !deleted {
		err = contracts.CellNotFoundError
	}

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	response, err := api.SheetRepository.GetSheet()

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) ClearSheetAction(c *gin.Context) {
	if err := api.SheetRepository.ClearSheet(); err != nil {
		api.writeError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) ShrinkSheetAction(c *gin.Context) {
	modified, err := api.SheetRepository.ShrinkSheet()

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusOK, gin.H{"modified": modified})
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err == nil {
		err = api.WebhookDispatcher.SetWebhookUrl(params.Address, request.WebhookUrl)
	}

	if err != nil {
		api.writeError(c, err)
	} else {
		c.JSON(http.StatusCreated, gin.H{"address": params.Address, "webhook_url": request.WebhookUrl})
	}
}

func (api *ApiController) writeError(c *gin.Context, err error) {
	if errors.Is(err, contracts.CellNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if errors.Is(err, contracts.AddressSyntaxError) || errors.Is(err, contracts.CellValueSyntaxError) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
