package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "github.com/Etropal00/ewick-ai-function/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Text sends 200 JSON {"text": text}.
func Text(c *gin.Context, text string) {
	c.JSON(http.StatusOK, TextResp{Text: text})
}

// NoContent sends 204 without a body.
func NoContent(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

// Error renders err. An *errors.HTTPError keeps its status, message and detail;
// anything else becomes a generic 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.StatusCode, ErrorResp{
			Error:  httpErr.Message,
			Detail: httpErr.Detail,
		})
		return
	}

	InternalError(c, err)
}

// InternalError sends 500 with the generic message and the error as detail.
func InternalError(c *gin.Context, err error) {
	resp := ErrorResp{Error: DefaultErrorMessage}
	if err != nil {
		resp.Detail = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}
