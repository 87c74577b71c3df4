package response

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Order number is valid"`
}

func Success(msg string) MessageResponse {
	return MessageResponse{Success: true, Message: msg}
}

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"This order number has already been used"`
}
