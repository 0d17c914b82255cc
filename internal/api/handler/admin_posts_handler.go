package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// AdminPostsHandler moderates posts without ownership checks. Targets
// are named in the body, matching the collection-level admin routes.
type AdminPostsHandler struct {
	admin ports.AdminService
}

func NewAdminPostsHandler(admin ports.AdminService) *AdminPostsHandler {
	return &AdminPostsHandler{admin: admin}
}

type adminUpdatePostRequest struct {
	PostID  string                 `json:"postId" validate:"required"`
	Updates adminPostUpdatePayload `json:"updates"`
}

type adminPostUpdatePayload struct {
	Title       *string `json:"title"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type adminPostIDRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// adminPostView decorates a post with the aggregate counts the back
// office table shows.
type adminPostView struct {
	domain.BlogPost
	LikesCount    int `json:"likesCount"`
	CommentsCount int `json:"commentsCount"`
}

type adminPostListResponse struct {
	Success bool            `json:"success"`
	Posts   []adminPostView `json:"posts"`
}

type deletePostResponse struct {
	Message       string `json:"message"`
	DeletedPostID string `json:"deletedPostId"`
}

// List returns every post for moderation, with like and comment counts.
//
// @Summary      List all posts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  adminPostListResponse
// @Failure      401  {object}  map[string]string
// @Router       /admin/posts [get]
func (h *AdminPostsHandler) List(c echo.Context) error {
	posts, err := h.admin.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]adminPostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, adminPostView{
			BlogPost:      p,
			LikesCount:    len(p.Likes),
			CommentsCount: len(p.Comments),
		})
	}
	return c.JSON(http.StatusOK, adminPostListResponse{Success: true, Posts: views})
}

// Update edits the post named in the body regardless of author.
//
// @Summary      Update any post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminUpdatePostRequest  true  "Target post and fields to change"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/posts [put]
func (h *AdminPostsHandler) Update(c echo.Context) error {
	var req adminUpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	upd := domain.PostUpdate{
		Title:       req.Updates.Title,
		ImageURL:    req.Updates.ImageURL,
		Description: req.Updates.Description,
		Content:     req.Updates.Content,
	}
	if upd.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	if err := h.admin.UpdatePost(c.Request().Context(), req.PostID, upd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Delete removes the post named in the body regardless of author.
//
// @Summary      Delete any post
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminPostIDRequest  true  "Target post"
// @Success      200   {object}  deletePostResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/posts [delete]
func (h *AdminPostsHandler) Delete(c echo.Context) error {
	var req adminPostIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.admin.DeletePost(c.Request().Context(), req.PostID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deletePostResponse{
		Message:       "Post deleted successfully",
		DeletedPostID: req.PostID,
	})
}
