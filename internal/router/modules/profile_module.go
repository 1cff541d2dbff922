package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-social-network/internal/interface/http"
)

// ProfileModule wires profile routes under /api/profiles
// Public: GET /all, GET /users/:userId, GET /:profileId
// Protected: everything that reads or writes the caller's own profile,
// and DELETE /users/:userId
type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Auth    gin.HandlerFunc
}

func NewProfileModule(h *handlers.ProfileHandler, auth gin.HandlerFunc) *ProfileModule {
	return &ProfileModule{Handler: h, Auth: auth}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	g := rg.Group("/profiles")

	g.GET("/all", m.Handler.All)
	g.GET("/users/:userId", m.Handler.ByUser)

	g.POST("", m.Auth, m.Handler.Create)
	g.PUT("", m.Auth, m.Handler.Update)
	g.GET("/me", m.Auth, m.Handler.Me)
	g.DELETE("/users/:userId", m.Auth, m.Handler.DeleteAccount)
	g.PUT("/experience", m.Auth, m.Handler.AddExperience)
	g.DELETE("/experience/:id", m.Auth, m.Handler.RemoveExperience)
	g.PUT("/education", m.Auth, m.Handler.AddEducation)
	g.DELETE("/education/:id", m.Auth, m.Handler.RemoveEducation)

	// static segments above take precedence over this wildcard
	g.GET("/:profileId", m.Handler.ByID)
}
