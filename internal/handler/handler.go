package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campus-helper/internal/middleware"
	"campus-helper/internal/service"
)

type Handlers struct {
	Forum       *ForumHandler
	Marketplace *MarketplaceHandler
	Home        *HomeHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Forum:       NewForumHandler(services.Forum),
		Marketplace: NewMarketplaceHandler(services.Marketplace),
		Home:        NewHomeHandler(services.Home),
	}
}

func parseID(c *fiber.Ctx, param, message string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, middleware.BadRequest(message)
	}
	return id, nil
}
