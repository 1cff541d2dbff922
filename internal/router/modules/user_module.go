package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-social-network/internal/interface/http"
)

// UserModule wires account routes under /api/users
// Public: POST /register, POST /login
// Protected: GET /me, POST /logout
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, auth gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/users")
	g.POST("/register", m.Handler.Register)
	g.POST("/login", m.Handler.Login)

	g.GET("/me", m.Auth, m.Handler.Me)
	g.POST("/logout", m.Auth, m.Handler.Logout)
}
