package request

import (
	"lucky-draw/internal/usecase/commands"
)

type CheckOrderNumberRequest struct {
	OrderNumber string `json:"orderNumber" binding:"required" example:"A100"`
}

type RecordDrawResultRequest struct {
	OrderNumber string `json:"orderNumber" binding:"required" example:"A100"`
	DrawResult  string `json:"drawResult" binding:"required" example:"PRIZE1"`
}

func (r RecordDrawResultRequest) ToCommand() commands.RecordDrawResultRequest {
	return commands.RecordDrawResultRequest{
		OrderNumber: r.OrderNumber,
		DrawResult:  r.DrawResult,
	}
}
