package dto

// CreateAuthenticationTokenRequestBody defines a request body for CreateAuthenticationToken service.
type CreateAuthenticationTokenRequestBody struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
