package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type APIResponse struct {
	Code int
	Body []byte
}

func MakeRequest(
	t *testing.T,
	router *gin.Engine,
	method, url, authToken string,
	body any,
	expectedStatus int,
) *APIResponse {
	t.Helper()

	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	return &APIResponse{Code: w.Code, Body: w.Body.Bytes()}
}

func MakeGetRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *APIResponse {
	t.Helper()
	return MakeRequest(t, router, "GET", url, authToken, nil, expectedStatus)
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeGetRequest(t, router, url, authToken, expectedStatus)
	if err := json.Unmarshal(resp.Body, out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", string(resp.Body), err)
	}
}

func MakePostRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
) *APIResponse {
	t.Helper()
	return MakeRequest(t, router, "POST", url, authToken, body, expectedStatus)
}

func MakeDeleteRequest(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	expectedStatus int,
) *APIResponse {
	t.Helper()
	return MakeRequest(t, router, "DELETE", url, authToken, nil, expectedStatus)
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeRequest(t, router, "POST", url, authToken, body, expectedStatus)
	if err := json.Unmarshal(resp.Body, out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", string(resp.Body), err)
	}
}

func MakePutRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url, authToken string,
	body any,
	expectedStatus int,
	out any,
) {
	t.Helper()
	resp := MakeRequest(t, router, "PUT", url, authToken, body, expectedStatus)
	if err := json.Unmarshal(resp.Body, out); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", string(resp.Body), err)
	}
}
