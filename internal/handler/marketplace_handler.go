package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-helper/internal/domain"
	"campus-helper/internal/middleware"
	"campus-helper/internal/service/marketplace"
)

type MarketplaceHandler struct {
	marketplaceService marketplace.Service
}

func NewMarketplaceHandler(marketplaceService marketplace.Service) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaceService: marketplaceService}
}

func (h *MarketplaceHandler) GetItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId", "Invalid item ID")
	if err != nil {
		return err
	}

	item, err := h.marketplaceService.GetItem(c.Context(), userID, itemID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *MarketplaceHandler) ListReviews(c *fiber.Ctx) error {
	itemID, err := parseID(c, "itemId", "Invalid item ID")
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", 20)

	reviews, err := h.marketplaceService.ListReviews(c.Context(), itemID, limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": reviews})
}

func (h *MarketplaceHandler) SubmitReview(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId", "Invalid item ID")
	if err != nil {
		return err
	}

	var input domain.CreateRatingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	review, err := h.marketplaceService.SubmitReview(c.Context(), userID, itemID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"review":  review,
		"message": middleware.T(c, "rating.submitted"),
	})
}

func (h *MarketplaceHandler) ReportItem(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId", "Invalid item ID")
	if err != nil {
		return err
	}

	var input domain.CreateReportInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	report, err := h.marketplaceService.ReportItem(c.Context(), userID, itemID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report":  report,
		"message": middleware.T(c, "report.submitted"),
	})
}

func (h *MarketplaceHandler) Contact(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "itemId", "Invalid item ID")
	if err != nil {
		return err
	}

	result, err := h.marketplaceService.Contact(c.Context(), userID, itemID)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result)
}
