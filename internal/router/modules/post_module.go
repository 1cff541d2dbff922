package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-social-network/internal/interface/http"
)

// PostModule wires post routes under /api/posts. Every route is protected.
type PostModule struct {
	Handler *handlers.PostHandler
	Auth    gin.HandlerFunc
}

func NewPostModule(h *handlers.PostHandler, auth gin.HandlerFunc) *PostModule {
	return &PostModule{Handler: h, Auth: auth}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/posts", m.Auth)
	g.POST("", m.Handler.Create)
	g.GET("", m.Handler.List)
	g.GET("/:postId", m.Handler.Get)
	g.DELETE("/:postId", m.Handler.Delete)
	g.PUT("/like/:postId", m.Handler.Like)
	g.PUT("/unlike/:postId", m.Handler.Unlike)
	g.POST("/comment/:postId", m.Handler.Comment)
	g.DELETE("/comment/:postId/:commentId", m.Handler.DeleteComment)
}
