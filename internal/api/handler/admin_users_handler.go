package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AdminUsersHandler serves the user-management back office. Every
// route behind it requires an admin session.
type AdminUsersHandler struct {
	admin ports.AdminService
}

func NewAdminUsersHandler(admin ports.AdminService) *AdminUsersHandler {
	return &AdminUsersHandler{admin: admin}
}

type adminCreateUserRequest struct {
	Username    string `json:"username" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,len=10,numeric"`
	Gender      string `json:"gender" validate:"required,oneof=male female other"`
	Password    string `json:"password" validate:"required,min=6"`
	IsAdmin     bool   `json:"isAdmin"`
}

// adminUpdateUserRequest carries the target id and a nested updates
// object, matching the collection-level PUT route.
type adminUpdateUserRequest struct {
	UserID  string                 `json:"userId" validate:"required"`
	Updates adminUserUpdatePayload `json:"updates"`
}

type adminUserUpdatePayload struct {
	Username       *string `json:"username"`
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phoneNumber"`
	Gender         *string `json:"gender"`
	ProfilePicture *string `json:"profilePicture"`
}

type adminUserIDRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type adminUserActionRequest struct {
	UserID string `json:"userId" validate:"required"`
	Action string `json:"action" validate:"required,oneof=toggleAdmin"`
}

type deleteUserResponse struct {
	Message       string `json:"message"`
	DeletedUserID string `json:"deletedUserId"`
}

type userPageResponse struct {
	Success    bool          `json:"success"`
	Users      []domain.User `json:"users"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	HasNext    bool          `json:"hasNext"`
	HasPrev    bool          `json:"hasPrev"`
}

type userResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

// List returns a page of users, optionally filtered by a search term
// matched against username and email.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        search  query     string  false  "Username or email filter"
// @Success      200     {object}  userPageResponse
// @Failure      401     {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminUsersHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.admin.ListUsers(c.Request().Context(), ports.ListUsersInput{
		Page:   page,
		Limit:  limit,
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userPageResponse{
		Success:    true,
		Users:      result.Users,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		HasNext:    result.HasNext,
		HasPrev:    result.HasPrev,
	})
}

// Create provisions an account, optionally with the admin flag set.
//
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminCreateUserRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/users [post]
func (h *AdminUsersHandler) Create(c echo.Context) error {
	var req adminCreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.admin.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Gender:      req.Gender,
		Password:    req.Password,
		IsAdmin:     req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{Success: true, User: user})
}

// Update applies a partial update to the user named in the body. The
// admin flag is only changeable through ToggleAdmin.
//
// @Summary      Update a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminUpdateUserRequest  true  "Target user and fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /admin/users [put]
func (h *AdminUsersHandler) Update(c echo.Context) error {
	var req adminUpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	upd := domain.UserUpdate{
		Username:       req.Updates.Username,
		Email:          req.Updates.Email,
		PhoneNumber:    req.Updates.PhoneNumber,
		Gender:         req.Updates.Gender,
		ProfilePicture: req.Updates.ProfilePicture,
	}
	if upd.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	user, err := h.admin.UpdateUser(c.Request().Context(), req.UserID, upd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// ToggleAdmin flips the admin flag of the user named in the body. The
// action field names the operation so the PATCH verb stays extensible.
// Admins cannot change their own flag.
//
// @Summary      Toggle a user's admin flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminUserActionRequest  true  "Target user and action"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/users [patch]
func (h *AdminUsersHandler) ToggleAdmin(c echo.Context) error {
	acting, err := currentUser(c)
	if err != nil {
		return err
	}

	var req adminUserActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.admin.ToggleAdmin(c.Request().Context(), acting, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Success: true, User: user})
}

// Delete removes the user named in the body along with their posts and
// sessions. Admin accounts cannot be deleted.
//
// @Summary      Delete a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminUserIDRequest  true  "Target user"
// @Success      200   {object}  deleteUserResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/users [delete]
func (h *AdminUsersHandler) Delete(c echo.Context) error {
	acting, err := currentUser(c)
	if err != nil {
		return err
	}

	var req adminUserIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.DeleteUser(c.Request().Context(), acting, req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteUserResponse{
		Message:       "User deleted successfully",
		DeletedUserID: req.UserID,
	})
}
