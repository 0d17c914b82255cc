package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AdminAboutHandler edits the About page content and its team members.
// All operations address the /admin/about collection; team members are
// named in the body.
type AdminAboutHandler struct {
	about ports.AboutService
}

func NewAdminAboutHandler(about ports.AboutService) *AdminAboutHandler {
	return &AdminAboutHandler{about: about}
}

// aboutPostRequest is the combined POST payload: a section update by
// default, or a team-member creation when action names one.
type aboutPostRequest struct {
	Action     string                  `json:"action"`
	Section    string                  `json:"section"`
	Content    any                     `json:"content"`
	TeamMember teamMemberCreatePayload `json:"teamMember"`
}

type teamMemberCreatePayload struct {
	Name        string             `json:"name"`
	Position    string             `json:"position"`
	Bio         string             `json:"bio"`
	ImageURL    string             `json:"imageUrl"`
	Email       string             `json:"email"`
	SocialLinks domain.SocialLinks `json:"socialLinks"`
	Order       int                `json:"order"`
}

type updateTeamMemberRequest struct {
	TeamMemberID string              `json:"teamMemberId" validate:"required"`
	Name         *string             `json:"name"`
	Position     *string             `json:"position"`
	Bio          *string             `json:"bio"`
	ImageURL     *string             `json:"imageUrl"`
	Email        *string             `json:"email"`
	SocialLinks  *domain.SocialLinks `json:"socialLinks"`
	Order        *int                `json:"order"`
	IsActive     *bool               `json:"isActive"`
}

type deleteTeamMemberRequest struct {
	TeamMemberID string `json:"teamMemberId" validate:"required"`
}

type reorderTeamRequest struct {
	OrderedIDs []string `json:"orderedIds" validate:"required,min=1"`
}

type teamMemberResponse struct {
	Success bool               `json:"success"`
	Member  *domain.TeamMember `json:"member"`
}

// Get returns the full admin view of the About page, inactive team
// members included.
//
// @Summary      About page (admin view)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  aboutResponse
// @Failure      401  {object}  map[string]string
// @Router       /admin/about [get]
func (h *AdminAboutHandler) Get(c echo.Context) error {
	page, err := h.about.Page(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, aboutResponse{
		Success:     true,
		Content:     page.Content,
		TeamMembers: page.TeamMembers,
	})
}

// Post replaces one named section of the About content, or adds a team
// member when the action field says so.
//
// @Summary      Update an About section or add a team member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      aboutPostRequest  true  "Section update, or createTeamMember action"
// @Success      200   {object}  map[string]bool
// @Success      201   {object}  teamMemberResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/about [post]
func (h *AdminAboutHandler) Post(c echo.Context) error {
	var req aboutPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	switch req.Action {
	case "createTeamMember":
		if req.TeamMember.Name == "" || req.TeamMember.Position == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name and position are required")
		}
		member, err := h.about.CreateTeamMember(c.Request().Context(), ports.CreateTeamMemberInput{
			Name:        req.TeamMember.Name,
			Position:    req.TeamMember.Position,
			Bio:         req.TeamMember.Bio,
			ImageURL:    req.TeamMember.ImageURL,
			Email:       req.TeamMember.Email,
			SocialLinks: req.TeamMember.SocialLinks,
			Order:       req.TeamMember.Order,
		})
		if err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, teamMemberResponse{Success: true, Member: member})
	case "":
		if req.Section == "" || req.Content == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "section and content are required")
		}
		if err := h.about.UpdateSection(c.Request().Context(), req.Section, req.Content); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action: "+req.Action)
	}
}

// UpdateTeamMember applies a partial update to the team member named
// in the body.
//
// @Summary      Update a team member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      updateTeamMemberRequest  true  "Target member and fields to change"
// @Success      200   {object}  teamMemberResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/about [put]
func (h *AdminAboutHandler) UpdateTeamMember(c echo.Context) error {
	var req updateTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.about.UpdateTeamMember(c.Request().Context(), req.TeamMemberID, domain.TeamMemberUpdate{
		Name:        req.Name,
		Position:    req.Position,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		Email:       req.Email,
		SocialLinks: req.SocialLinks,
		Order:       req.Order,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teamMemberResponse{Success: true, Member: member})
}

// DeleteTeamMember removes the team member named in the body.
//
// @Summary      Delete a team member
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      deleteTeamMemberRequest  true  "Target member"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/about [delete]
func (h *AdminAboutHandler) DeleteTeamMember(c echo.Context) error {
	var req deleteTeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.about.DeleteTeamMember(c.Request().Context(), req.TeamMemberID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ReorderTeam assigns display positions from the given id order.
//
// @Summary      Reorder team members
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      reorderTeamRequest  true  "Member ids in display order"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/about [patch]
func (h *AdminAboutHandler) ReorderTeam(c echo.Context) error {
	var req reorderTeamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.about.ReorderTeamMembers(c.Request().Context(), req.OrderedIDs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
