package token

import (
	authmw "komek/pkg/platform/middleware/auth"
)

func toMiddlewareClaims(claims *Claims) *authmw.TokenClaims {
	return &authmw.TokenClaims{
		UserID: claims.UserID,
		Role:   claims.Role,
	}
}

// ServiceAdapter bridges the token service to the auth middleware contract.
type ServiceAdapter struct {
	service *Service
}

func NewServiceAdapter(service *Service) *ServiceAdapter {
	return &ServiceAdapter{service: service}
}

func (a *ServiceAdapter) ValidateToken(tokenString string) (*authmw.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return toMiddlewareClaims(claims), nil
}
