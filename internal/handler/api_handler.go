package handler

import (
	"members-admin-service/api"
	"members-admin-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*SessionHandler
	*TableHandler
}

func NewAPIHandler(
	tableUseCase domain.TableUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		SessionHandler: NewSessionHandler(tableUseCase, logger),
		TableHandler:   NewTableHandler(tableUseCase, logger),
	}
}
