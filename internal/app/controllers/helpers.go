package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/auth"
	"github.com/rupp/ams-api/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes a 400 response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// callerIdentity reads the identity stored by the auth middleware. A
// missing identity means the route was wired without JWTAuth; respond 401.
func callerIdentity(ctx *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.CurrentIdentity(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return auth.Identity{}, false
	}
	return identity, true
}
