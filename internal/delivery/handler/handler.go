package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"post-service/internal/application/command"
	"post-service/internal/application/interfaces"
	"post-service/internal/domain"
)

type Handler struct {
	postService interfaces.PostService
}

func NewHandler(postService interfaces.PostService) *Handler {
	return &Handler{postService: postService}
}

// ListPosts handles GET /api/posts. Public: no session required, and every
// post is returned regardless of its published flag.
func (h *Handler) ListPosts(c echo.Context) error {
	listResult, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, listResult.Result)
}

// CreatePost handles POST /api/posts. Requires a resolved session; the
// author is always the session user, never taken from the request body.
func (h *Handler) CreatePost(c echo.Context) error {
	user := sessionUser(c)
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var createCommand command.CreatePostCommand
	if err := c.Bind(&createCommand); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.postService.CreatePost(c.Request().Context(), user, &createCommand)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		case errors.Is(err, domain.ErrRateLimited):
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
		}
	}

	return c.JSON(http.StatusCreated, result.Result)
}

// Health handles GET /healthz.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
