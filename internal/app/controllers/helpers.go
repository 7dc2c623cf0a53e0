package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/models/dto"
	"github.com/yigit/classroom/internal/middleware"
	"github.com/yigit/classroom/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter written as plain
// digits. Anything else ("+1", "-1", "1e3") can never match a row, so it is
// answered with the entity's not-found body.
func parseIDParam(ctx *gin.Context, name, entity string) (int64, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 || !isDigits(raw) {
		ctx.JSON(http.StatusNotFound, dto.NewNotFoundResponse(entity))
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// respondError sends not-found inline and hands everything else to the
// error middleware.
func respondError(ctx *gin.Context, entity string, err error) {
	if apperrors.IsNotFound(err) {
		ctx.JSON(http.StatusNotFound, dto.NewNotFoundResponse(entity))
		return
	}
	middleware.HandleAPIError(ctx, err)
}

func deleted(ctx *gin.Context, entity string) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: entity + " deleted"})
}
