package response

import "geresaco/internal/usecase"

type AuthResponse struct {
	Token   string        `json:"token"`
	Usuario *UserResponse `json:"usuario"`
}

type VerifyTokenResponse struct {
	Valido  bool          `json:"valido"`
	Usuario *UserResponse `json:"usuario"`
}

func FromAuthResult(result *usecase.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token:   result.Token,
		Usuario: FromUserRM(result.User),
	}
}
