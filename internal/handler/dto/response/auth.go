package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID       uuid.UUID  `json:"userId"`
	Role         string     `json:"role"`
	CompanyID    *uuid.UUID `json:"companyId,omitempty"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
