package api

import (
	"strconv"

	"github.com/fsdevblog/usdt-yield/internal/domain"
	"github.com/fsdevblog/usdt-yield/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getActorFromContext собирает Actor из значений, положенных auth middleware.
// Вызывается только за AuthRequired, поэтому отсутствие значений - баг роутинга.
func getActorFromContext(c *gin.Context) domain.Actor {
	userID, _ := c.Get(middlewares.CurrentUserIDKey)
	role, _ := c.Get(middlewares.CurrentUserRoleKey)

	actor := domain.Actor{}
	if id, ok := userID.(int64); ok {
		actor.UserID = id
	}
	if r, ok := role.(domain.RoleType); ok {
		actor.Role = r
	}
	return actor
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	return parseID(c.Param(name))
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
