package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is one entry of a failure body. Param names the offending field.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorBody is the shape of every failure: {"errors":[{"msg":"..."}]}.
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// Success writes {"msg": msg, key: data}. An empty msg or key is left out.
func Success(ctx *gin.Context, status int, msg string, key string, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{}
	if msg != "" {
		body["msg"] = msg
	}
	if key != "" {
		body[key] = data
	}
	ctx.JSON(status, body)
}

// Message writes {"msg": msg}.
func Message(ctx *gin.Context, status int, msg string) {
	Success(ctx, status, msg, "", nil)
}

// Error writes a single-entry failure body.
func Error(ctx *gin.Context, status int, msg string) {
	Errors(ctx, status, ErrorItem{Msg: msg})
}

// Errors writes a failure body with one entry per item.
func Errors(ctx *gin.Context, status int, items ...ErrorItem) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	if items == nil {
		items = []ErrorItem{}
	}
	ctx.JSON(status, ErrorBody{Errors: items})
}

// Abort writes a failure body and stops the handler chain.
func Abort(ctx *gin.Context, status int, msg string) {
	ctx.AbortWithStatusJSON(status, ErrorBody{Errors: []ErrorItem{{Msg: msg}}})
}
