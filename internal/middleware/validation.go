package middleware

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// RegisterJSONTagNames makes validation errors report JSON keys
// ("user_id") instead of Go field names ("UserID").
func RegisterJSONTagNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// BindCreate decodes the JSON body into obj and enforces required fields.
// It writes the 400 response itself and reports false when binding failed.
// An empty body is treated as a body with every field missing.
func BindCreate(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewMissingDataResponse(missingFields(verrs)))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	return false
}

// BindUpdate decodes an optional JSON body; an empty body changes nothing.
func BindUpdate(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
	return false
}

func missingFields(verrs validator.ValidationErrors) []string {
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			fields = append(fields, fe.Field())
		}
	}
	return fields
}
