package v1

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	logicv1 "github.com/duynhne/store-service/internal/logic/v1"
)

// Every endpoint answers with the same envelope:
// {success: bool, message?: string, data?: object, errors?: object}.

func respondOK(c *gin.Context, message string, data any) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": message})
}

func respondValidation(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"message": "The given data was invalid.",
		"errors":  fields,
	})
}

func respondInternal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error.",
	})
}

var tagNameOnce sync.Once

// registerTagNameFunc makes validator report JSON field names instead of
// Go struct field names, so error maps match the request payload.
func registerTagNameFunc() {
	tagNameOnce.Do(func() {
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
	})
}

// bindJSON binds and validates the request body. On failure it writes the
// appropriate error response and returns false: 422 with a per-field message
// map for rule violations, 400 for malformed JSON.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		respondValidation(c, validationFields(verrs))
		return false
	}

	respondBadRequest(c, "Malformed request body.")
	return false
}

// validationFields converts validator errors into the {field: [messages]}
// shape the API contract uses.
func validationFields(verrs validator.ValidationErrors) map[string][]string {
	fields := map[string][]string{}
	for _, fe := range verrs {
		name := fe.Field()
		fields[name] = append(fields[name], fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", fe.Field())
	}
}

// mapLogicError renders service failures that are shared across endpoints.
// Endpoint-specific sentinels are handled in the calling handler first.
func mapLogicError(c *gin.Context, err error) {
	var ve *logicv1.ValidationError
	switch {
	case errors.As(err, &ve):
		respondValidation(c, ve.Fields)
	case errors.Is(err, logicv1.ErrUserNotFound):
		respondNotFound(c, "User not found.")
	case errors.Is(err, logicv1.ErrProductNotFound):
		respondNotFound(c, "Product not found.")
	case errors.Is(err, logicv1.ErrReviewNotFound):
		respondNotFound(c, "Review not found.")
	default:
		respondInternal(c)
	}
}
