package router

import "github.com/gin-gonic/gin"

// Module is one resource (users, profiles, posts, debug) that mounts its
// routes on the /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
