package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-helper/internal/service/home"
)

type HomeHandler struct {
	homeService home.Service
}

func NewHomeHandler(homeService home.Service) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

func (h *HomeHandler) Highlights(c *fiber.Ctx) error {
	highlights, err := h.homeService.Highlights(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(highlights)
}
