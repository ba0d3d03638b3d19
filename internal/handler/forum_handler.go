package handler

import (
	"github.com/gofiber/fiber/v2"

	"campus-helper/internal/domain"
	"campus-helper/internal/middleware"
	"campus-helper/internal/service/forum"
)

type ForumHandler struct {
	forumService forum.Service
}

func NewForumHandler(forumService forum.Service) *ForumHandler {
	return &ForumHandler{forumService: forumService}
}

func (h *ForumHandler) GetPost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := parseID(c, "postId", "Invalid post ID")
	if err != nil {
		return err
	}

	post, err := h.forumService.GetPost(c.Context(), userID, postID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(post)
}

func (h *ForumHandler) ListComments(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId", "Invalid post ID")
	if err != nil {
		return err
	}

	thread, err := h.forumService.ListComments(c.Context(), postID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(thread)
}

func (h *ForumHandler) Reply(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := parseID(c, "postId", "Invalid post ID")
	if err != nil {
		return err
	}

	var input domain.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	result, err := h.forumService.Reply(c.Context(), userID, postID, input)
	if err != nil {
		return err
	}
	if result.Notice != "" {
		result.Notice = middleware.T(c, result.Notice)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

func (h *ForumHandler) ReportPost(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	postID, err := parseID(c, "postId", "Invalid post ID")
	if err != nil {
		return err
	}

	var input domain.CreateReportInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	report, err := h.forumService.ReportPost(c.Context(), userID, postID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report":  report,
		"message": middleware.T(c, "report.submitted"),
	})
}

func (h *ForumHandler) ReportComment(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}
	commentID, err := parseID(c, "commentId", "Invalid comment ID")
	if err != nil {
		return err
	}

	report, err := h.forumService.ReportComment(c.Context(), userID, commentID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"report":  report,
		"message": middleware.T(c, "report.submitted"),
	})
}
