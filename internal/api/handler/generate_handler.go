package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// GenerateHandler drafts blog content for a title.
type GenerateHandler struct {
	generator ports.ContentGenerator
}

func NewGenerateHandler(generator ports.ContentGenerator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

type generateRequest struct {
	Title string `json:"title" validate:"required,min=3"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// Generate returns a draft post body for the given title.
//
// @Summary      Generate draft content
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      generateRequest  true  "Post title"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /generate-blog [post]
func (h *GenerateHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	draft, err := h.generator.Generate(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, generateResponse{
		Success:     true,
		Content:     draft.Content,
		Description: draft.Description,
		Source:      draft.Source,
	})
}
