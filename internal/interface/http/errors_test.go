package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/oksasatya/go-social-network/internal/application"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{app.ErrValidation, http.StatusBadRequest},
		{app.ErrAlreadyLiked, http.StatusBadRequest},
		{app.ErrNotLiked, http.StatusBadRequest},
		{app.ErrInvalidCredentials, http.StatusUnauthorized},
		{app.ErrInvalidToken, http.StatusUnauthorized},
		{app.ErrForbidden, http.StatusForbidden},
		{app.ErrNotAuthorized, http.StatusForbidden},
		{app.ErrPostAlreadyLiked, http.StatusBadRequest},
		{app.ErrBadCredentials, http.StatusUnauthorized},
		{app.ErrPostNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", app.ErrProfileNotFound), http.StatusNotFound},
		{app.ErrEmailTaken, http.StatusConflict},
		{app.ErrVersionConflict, http.StatusConflict},
		{errors.New("socket closed"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}

func TestFailHidesUnexpectedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	fail(c, logger, errors.New("connection reset by peer"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	var body struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Server Error", body.Errors[0].Msg)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "connection reset by peer", hook.LastEntry().Data["error"])
}

func TestFailKeepsDomainMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/api/posts/x", nil)
	fail(c, logger, app.ErrNotAuthorized)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "User is not authorized")
	assert.Empty(t, hook.Entries)
}
