// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/iamcoreyg/dexo-docs/internal/usecase"
	"go.uber.org/zap"
)

// Handler serves the tracker API using the service layer interfaces.
type Handler struct {
	log   *zap.SugaredLogger
	uc    usecase.InterfaceUsecase
	token string
}

// NewHandler constructs an HTTP handler set with service dependencies.
// token is the shared secret issued as a cookie by the /auth endpoint.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, token string) *Handler {
	return &Handler{
		log:   log,
		uc:    usecase,
		token: token,
	}
}
