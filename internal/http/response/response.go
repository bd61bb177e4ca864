package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kapu/akin-sheet-go/pkg/errors"
)

type APIError struct {
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError writes the error envelope for err. The status and code come from
// the error taxonomy; server-side failures are reported without their cause.
func RespondError(c *gin.Context, err error) {
	status := errors.StatusCode(err)
	apiErr := APIError{
		Message: "internal server error",
		Code:    errors.Code(err),
	}
	if status < http.StatusInternalServerError && err != nil {
		apiErr.Message = err.Error()
	}

	apiErr.Fields = errors.MissingFields(err)

	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: apiErr})
}

// RespondBadRequest reports an unreadable request body.
func RespondBadRequest(c *gin.Context, err error) {
	RespondError(c, errors.NewSheetError("invalid request body", errors.CodeBadRequest, http.StatusBadRequest, nil).WithCause(err))
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
