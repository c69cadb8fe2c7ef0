package main

import (
	"bytes"
	"errors"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"sparseSheet/contracts"
	"sparseSheet/mocks"
	"testing"
)

func _request(apiController contracts.ApiController, method string, path string, data any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if data == nil {
		body = bytes.NewReader(nil)
	} else {
		jsonBody, _ := json.Marshal(data)
		body = bytes.NewReader(jsonBody)
	}

	router := SetupRouter(apiController)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, "/api/"+ApiVersion+path, body)
	router.ServeHTTP(w, req)
	return w
}

func TestApiController_GetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("should return cell value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "a1", false).
			Return(&contracts.CellResponse{Address: "A1", Value: "=1+1", Result: "=1+1"}, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/cells/a1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "A1", response["address"])
		assert.Equal(t, "=1+1", response["value"])
		assert.Equal(t, "=1+1", response["result"])
	})

	t.Run("materialized", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "A1", true).
			Return(&contracts.CellResponse{Address: "A1", Value: "=1+1", Result: "Real(2.0)"}, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/cells/A1?materialized=true", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Real(2.0)", response["result"])
	})

	t.Run("cell not found", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "A1", false).Return(nil, contracts.CellNotFoundError)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/cells/A1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, contracts.CellNotFoundError.Error(), response["error"])
	})

	t.Run("bad address", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "1A", false).Return(nil, contracts.AddressSyntaxError)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/cells/1A", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("custom error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetCell", "A1", false).Return(nil, errors.New("test"))

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/cells/A1", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_SetCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success write", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "B2", "5").
			Return(&contracts.CellResponse{Address: "B2", Value: "Int(5)", Result: "Int(5)"}, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodPost, "/cells/B2", map[string]string{"value": "5"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Int(5)", response["value"])
	})

	t.Run("missing value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)

		w := _request(NewApiController(sheetRepository, nil), http.MethodPost, "/cells/B2", map[string]string{})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, response, "error")
	})

	t.Run("bad value", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "B2", "a\nb").Return(nil, contracts.CellValueSyntaxError)

		w := _request(NewApiController(sheetRepository, nil), http.MethodPost, "/cells/B2", map[string]string{"value": "a\nb"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("SetCell", "B2", "5").Return(nil, errors.New("test"))

		w := _request(NewApiController(sheetRepository, nil), http.MethodPost, "/cells/B2", map[string]string{"value": "5"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "test", response["error"])
	})
}

func TestApiController_DeleteCellAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deleted", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("DeleteCell", "C3").Return(true, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodDelete, "/cells/C3", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, response["deleted"])
	})

	t.Run("nothing to delete", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("DeleteCell", "C3").Return(false, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodDelete, "/cells/C3", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestApiController_GetSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet").Return(&contracts.SheetResponse{
			Columns: 2,
			Rows:    1,
			Cells: []*contracts.CellResponse{
				{Address: "A1", Value: "Int(1)", Result: "Int(1)"},
				{Address: "B1", Value: "=A1+1", Result: "Real(2.0)"},
			},
		}, nil)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/sheet", nil)

		response := contracts.SheetResponse{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, response.Columns)
		assert.Equal(t, 1, response.Rows)
		assert.Len(t, response.Cells, 2)
		assert.Equal(t, "Real(2.0)", response.Cells[1].Result)
	})

	t.Run("error", func(t *testing.T) {
		sheetRepository := mocks.NewSheetRepository(t)
		sheetRepository.On("GetSheet").Return(nil, contracts.SheetFileError)

		w := _request(NewApiController(sheetRepository, nil), http.MethodGet, "/sheet", nil)
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, contracts.SheetFileError.Error(), response["error"])
	})
}

func TestApiController_ClearSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sheetRepository := mocks.NewSheetRepository(t)
	sheetRepository.On("ClearSheet").Return(nil)

	w := _request(NewApiController(sheetRepository, nil), http.MethodDelete, "/sheet", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestApiController_ShrinkSheetAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sheetRepository := mocks.NewSheetRepository(t)
	sheetRepository.On("ShrinkSheet").Return(true, nil)

	w := _request(NewApiController(sheetRepository, nil), http.MethodPost, "/sheet/shrink", nil)
	response, err := _parseJsonBody(w)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, response["modified"])
}

func TestApiController_SubscribeAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("subscribed", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("SetWebhookUrl", "A1", "http://localhost/hook").Return(nil)

		w := _request(NewApiController(nil, dispatcher), http.MethodPost, "/cells/A1/subscribe",
			map[string]string{"webhook_url": "http://localhost/hook"})
		response, err := _parseJsonBody(w)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "http://localhost/hook", response["webhook_url"])
	})

	t.Run("bad address", func(t *testing.T) {
		dispatcher := mocks.NewWebhookDispatcher(t)
		dispatcher.On("SetWebhookUrl", "A", "http://localhost/hook").Return(contracts.AddressSyntaxError)

		w := _request(NewApiController(nil, dispatcher), http.MethodPost, "/cells/A/subscribe",
			map[string]string{"webhook_url": "http://localhost/hook"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func _parseJsonBody(w *httptest.ResponseRecorder) (response map[string]any, err error) {
	err = json.Unmarshal(w.Body.Bytes(), &response)
	return
}
