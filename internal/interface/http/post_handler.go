package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-social-network/internal/application"
	"github.com/oksasatya/go-social-network/pkg/response"
)

type PostHandler struct {
	Svc    *app.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *app.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Text  string `json:"text" binding:"notblank"`
	Image string `json:"image" label:"Image Url" binding:"notblank"`
}

type commentRequest struct {
	Text string `json:"text" binding:"notblank"`
}

func (h *PostHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req createPostRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), id, app.CreatePostInput{Text: req.Text, Image: req.Image})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Post Created", "post", p)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "posts", posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("postId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "post", p)
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id, c.Param("postId")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "Post Removed")
}

func (h *PostHandler) Like(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	likes, err := h.Svc.Like(c.Request.Context(), id, c.Param("postId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Post Liked", "likes", likes)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	likes, err := h.Svc.Unlike(c.Request.Context(), id, c.Param("postId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Post Unliked", "likes", likes)
}

func (h *PostHandler) Comment(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req commentRequest
	if !bind(c, &req) {
		return
	}
	comments, err := h.Svc.Comment(c.Request.Context(), id, c.Param("postId"), req.Text)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment Added", "comments", comments)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	comments, err := h.Svc.DeleteComment(c.Request.Context(), id, c.Param("postId"), c.Param("commentId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Comment Removed", "comments", comments)
}
