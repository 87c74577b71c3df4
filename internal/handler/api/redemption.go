package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	reqdto "lucky-draw/internal/handler/dto/request"
	resdto "lucky-draw/internal/handler/dto/response"
	"lucky-draw/internal/handler/httperr"
	"lucky-draw/internal/pkg/errs"
	"lucky-draw/internal/usecase/commands"
	"lucky-draw/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	MsgOrderValid       = "Order number is valid"
	MsgDrawResultSaved  = "Draw result recorded successfully"
	MsgOrderNotFound    = "Order number not found. Please enter a qualified order number or contact customer service"
	MsgOrderAlreadyUsed = "This order number has already been used for the lucky draw"
	msgInvalidRequest   = "Invalid request"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.OrderQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.OrderQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Check order number
// @Description Check that an order number exists and has not been used for the lucky draw
// @Tags redemption
// @Accept json
// @Produce json
// @Param request body reqdto.CheckOrderNumberRequest true "Order number"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 404 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /check-order-number [post]
func (h *RedemptionHandler) CheckOrderNumber(c *gin.Context) {
	var req reqdto.CheckOrderNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, bindingMessage(err))
		return
	}

	if _, err := h.q.CheckOrderNumber(c.Request.Context(), req.OrderNumber); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(MsgOrderValid))
}

// @Summary Record draw result
// @Description Consume the order's single draw and store its result
// @Tags redemption
// @Accept json
// @Produce json
// @Param request body reqdto.RecordDrawResultRequest true "Order number and draw result"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} resdto.ErrorResponse
// @Failure 404 {object} resdto.ErrorResponse
// @Failure 500 {object} resdto.ErrorResponse
// @Router /record-draw-result [post]
func (h *RedemptionHandler) RecordDrawResult(c *gin.Context) {
	var req reqdto.RecordDrawResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, bindingMessage(err))
		return
	}

	if _, err := h.cmds.RecordDrawResult(c.Request.Context(), req.ToCommand()); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.Success(MsgDrawResultSaved))
}

func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, fmt.Sprintf("%s: %s", msgInvalidRequest, err.Error()))
	case errs.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, MsgOrderNotFound)
	case errs.Is(err, errs.ErrOrderAlreadyUsed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, MsgOrderAlreadyUsed)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, err.Error())
	}
}

// bindingMessage names the offending JSON fields, e.g. "Invalid request: orderNumber is required"
// or "Invalid request: drawResult must be a string".
func bindingMessage(err error) string {
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field != "" {
		return fmt.Sprintf("%s: %s must be a %s", msgInvalidRequest, te.Field, te.Type.Kind())
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return msgInvalidRequest
	}

	problems := make([]string, 0, len(ve))
	for _, fe := range ve {
		problems = append(problems, jsonFieldName(fe.Field())+" is "+fe.Tag())
	}
	return fmt.Sprintf("%s: %s", msgInvalidRequest, strings.Join(problems, ", "))
}

func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
