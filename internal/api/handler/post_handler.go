package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/bloghub-api/internal/api/middleware"
	"github.com/bloghub/bloghub-api/internal/core/domain"
	"github.com/bloghub/bloghub-api/internal/core/ports"
)

// PostHandler serves the public blog surface. Mutations carry the
// session token down to the service, which resolves and authorizes
// the caller.
type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Title       string `json:"title" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

// patchPostRequest is the combined PATCH payload: either an action
// (like, unlike, add-comment, delete-comment) or a partial field
// update when no action is given.
type patchPostRequest struct {
	Action      string  `json:"action"`
	Text        string  `json:"text"`
	CommentID   string  `json:"commentId"`
	Title       *string `json:"title"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type updatePostRequest struct {
	Title       *string `json:"title"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type postListResponse struct {
	Success bool              `json:"success"`
	Posts   []domain.BlogPost `json:"posts"`
}

type postResponse struct {
	Success bool             `json:"success"`
	Post    *domain.BlogPost `json:"post,omitempty"`
}

type commentResponse struct {
	Success bool            `json:"success"`
	Comment *domain.Comment `json:"comment,omitempty"`
}

// List returns every post, newest first.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListResponse
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.posts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postListResponse{Success: true, Posts: posts})
}

// Get returns a single post with its comments and likes.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Success: true, Post: post})
}

// Create publishes a new post authored by the session's user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post fields"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.posts.Create(c.Request().Context(), middleware.Token(c), ports.CreatePostInput{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Content:     req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, postResponse{Success: true, Post: post})
}

// Patch applies a named action (like, unlike, add-comment,
// delete-comment) or, absent an action, a partial field update
// restricted to the author or an admin.
//
// @Summary      Patch a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Post id"
// @Param        body  body      patchPostRequest  true  "Action or fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [patch]
func (h *PostHandler) Patch(c echo.Context) error {
	var req patchPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ctx := c.Request().Context()
	token := middleware.Token(c)
	id := c.Param("id")

	switch req.Action {
	case "like":
		if err := h.posts.Like(ctx, token, id); err != nil {
			return err
		}
	case "unlike":
		if err := h.posts.Unlike(ctx, token, id); err != nil {
			return err
		}
	case "add-comment":
		if req.Text == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "comment text is required")
		}
		comment, err := h.posts.AddComment(ctx, token, id, req.Text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, commentResponse{Success: true, Comment: comment})
	case "delete-comment":
		if req.CommentID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "commentId is required")
		}
		if err := h.posts.DeleteComment(ctx, token, id, req.CommentID); err != nil {
			return err
		}
	case "":
		upd := domain.PostUpdate{
			Title:       req.Title,
			ImageURL:    req.ImageURL,
			Description: req.Description,
			Content:     req.Content,
		}
		if upd.Empty() {
			return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
		}
		if err := h.posts.Update(ctx, token, id, upd); err != nil {
			return err
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action: "+req.Action)
	}

	post, err := h.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Success: true, Post: post})
}

// Update replaces post fields wholesale; restricted to the author or
// an admin.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to update"
// @Success      200   {object}  postResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	upd := domain.PostUpdate{
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Content:     req.Content,
	}
	if upd.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, "nothing to update")
	}

	ctx := c.Request().Context()
	id := c.Param("id")
	if err := h.posts.Update(ctx, middleware.Token(c), id, upd); err != nil {
		return err
	}

	post, err := h.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, postResponse{Success: true, Post: post})
}

// Delete removes a post; restricted to the author or an admin.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  map[string]bool
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.posts.Delete(c.Request().Context(), middleware.Token(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
