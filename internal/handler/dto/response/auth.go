package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type LoginFailedResponse struct {
	Message string `json:"message" example:"Invalid credentials"`
}

type MeResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
