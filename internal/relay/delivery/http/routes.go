package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps every method on path to the relay handler, which
// answers OPTIONS and POST and rejects the rest itself.
func RegisterRoutes(r gin.IRoutes, path string, h Handler) {
	r.Any(path, h.Generate)
}
