package dto

// RegisterUserRequestBody defines a request body for RegisterUser service.
type RegisterUserRequestBody struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	ProfilePicture string `json:"profile_picture" validate:"omitempty,url"`
}
