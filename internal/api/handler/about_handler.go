package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AboutHandler serves the public About page.
type AboutHandler struct {
	about ports.AboutService
}

func NewAboutHandler(about ports.AboutService) *AboutHandler {
	return &AboutHandler{about: about}
}

type aboutResponse struct {
	Success     bool                `json:"success"`
	Content     domain.AboutContent `json:"content"`
	TeamMembers []domain.TeamMember `json:"teamMembers"`
}

// Get returns the About page content with its active team members.
//
// @Summary      About page content
// @Tags         about
// @Produce      json
// @Success      200  {object}  aboutResponse
// @Router       /about [get]
func (h *AboutHandler) Get(c echo.Context) error {
	page, err := h.about.Page(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutResponse{
		Success:     true,
		Content:     page.Content,
		TeamMembers: page.TeamMembers,
	})
}
