//go:build unit || e2e

package httptest

import (
	"bytes"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

const HeaderUserID = "X-Sharer-User-Id"

// executes HTTP request acting as actorID; 0 sends no identity header
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, actorID int64) *httptest.ResponseRecorder {
	t.Helper()

	headers := map[string]string{}
	if actorID != 0 {
		headers[HeaderUserID] = strconv.FormatInt(actorID, 10)
	}
	return PerformRequestWithHeaders(t, router, method, path, body, headers)
}

// executes HTTP request with a bearer token instead of the user id header
func PerformRequestWithToken(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	return PerformRequestWithHeaders(t, router, method, path, body, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := jsoniter.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := jsoniter.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
