package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"urlencoder/encoding"
	"urlencoder/logging"
	"urlencoder/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResultsLogger struct {
	rejections []logging.Rejection
}

func (m *mockResultsLogger) DecodeRejected(r logging.Rejection) {
	m.rejections = append(m.rejections, r)
}

func do(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEncode(t *testing.T) {
	// Arrange
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, nil)

	// Act
	w := do(t, r, http.MethodPost, "/encode", "100% done!", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100%25+done%21", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestDecode(t *testing.T) {
	// Arrange
	r := NewRouter(testutils.NewTestLogger(t), encoding.Component, nil)

	// Act
	w := do(t, r, http.MethodPost, "/decode", "%25%23ok%C3%A9k%C3%89%C8%A2%20smile%21%F0%9F%98%81", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%#okékÉȢ smile!\U0001F601", w.Body.String())
}

func TestDecodeMalformed(t *testing.T) {
	// Arrange
	rl := &mockResultsLogger{}
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, rl)
	reqID := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	// Act
	w := do(t, r, http.MethodPost, "/decode", "sdkjfh%xx", map[string]string{RequestIDHeader: reqID})

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, reqID, w.Header().Get(RequestIDHeader))

	var body struct {
		Error    string `json:"error"`
		Position int    `json:"position"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Position)
	assert.Contains(t, body.Error, "invalid characters in escape sequence")

	require.Len(t, rl.rejections, 1)
	assert.Equal(t, reqID, rl.rejections[0].RequestID)
	assert.Equal(t, "http", rl.rejections[0].Transport)
}

func TestDecodeLenient(t *testing.T) {
	// Arrange
	rl := &mockResultsLogger{}
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, rl)

	// Act
	w := do(t, r, http.MethodPost, "/decode?lenient=true", "a+b%2Bc%zz%4", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a b+c%zz%4", w.Body.String())
	assert.Empty(t, rl.rejections)
}

func TestDecodeForm(t *testing.T) {
	// Arrange
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, nil)

	// Act
	w := do(t, r, http.MethodPost, "/form/decode", "q=a+b%2Bc&flag&name=J%C3%B6rg", nil)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"key":"q","val":"a b+c"},{"key":"flag","val":""},{"key":"name","val":"Jörg"}]`, w.Body.String())
}

func TestDecodeFormMalformed(t *testing.T) {
	// Arrange
	rl := &mockResultsLogger{}
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, rl)

	// Act
	w := do(t, r, http.MethodPost, "/form/decode", "a=1&b=%", nil)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"form pair 1: val: malformed encoding at position 0 (\"%\"): truncated escape sequence","position":0,"pair":1}`, w.Body.String())
	assert.Len(t, rl.rejections, 1)
}

func TestBodyTooLarge(t *testing.T) {
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, nil)
	w := do(t, r, http.MethodPost, "/encode", strings.Repeat("a", MaxBodyBytes+1), nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthz(t *testing.T) {
	r := NewRouter(testutils.NewTestLogger(t), encoding.Query, nil)
	w := do(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
