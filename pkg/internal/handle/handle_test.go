package handle

import (
	"bytes"
	"crypto/tls"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/service"
	"github.com/yeisme/imagevault/pkg/log"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/images", nil)

	return c, w
}

func TestUploadErrorResponseUploadClass(t *testing.T) {
	c, w := newTestContext(t)

	err := service.NewUploadError("read form image", errors.New("no such file"))
	uploadErrorResponse(c, log.Logger(), err)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	if body := w.Body.String(); !strings.Contains(body, `"message":"Image upload error"`) {
		t.Fatalf("body = %s, want upload error message", body)
	}
}

func TestUploadErrorResponseProcessingClass(t *testing.T) {
	c, w := newTestContext(t)

	uploadErrorResponse(c, log.Logger(), errors.New("disk full"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	if body := w.Body.String(); !strings.Contains(body, `"message":"Error uploading image"`) {
		t.Fatalf("body = %s, want processing error message", body)
	}
}

func TestUploadErrorResponseWrappedUploadError(t *testing.T) {
	c, w := newTestContext(t)

	// 包装过的上传错误仍按 400 分类（errors.As 能力检查，而非类型相等）
	wrapped := service.NewUploadError("read form image", errors.New("bad boundary"))
	uploadErrorResponse(c, log.Logger(), wrapped)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// newBatchContext 构造携带 multipart 表单的批量上传请求上下文，files 为 images 字段的文件名列表.
func newBatchContext(t *testing.T, files []string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)
	for _, name := range files {
		fw, err := mw.CreateFormFile("images", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}

		if _, err := fw.Write([]byte("png-bytes")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}

	if err := mw.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/images/batch", &buf)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())

	return c, w
}

func TestUploadBatchOverLimit(t *testing.T) {
	c, w := newBatchContext(t, []string{"a.png", "b.png"})

	h := NewImagesHandler(configs.VaultConfig{MaxFiles: 1})
	h.UploadBatch(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	if body := w.Body.String(); !strings.Contains(body, `"message":"Image upload error"`) {
		t.Fatalf("body = %s, want upload error message", body)
	}
}

func TestUploadBatchMalformedForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/images/batch", strings.NewReader("not a form"))
	c.Request.Header.Set("Content-Type", "text/plain")

	h := NewImagesHandler(configs.VaultConfig{MaxFiles: 1})
	h.UploadBatch(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	if body := w.Body.String(); !strings.Contains(body, `"message":"Image upload error"`) {
		t.Fatalf("body = %s, want upload error message", body)
	}
}

func TestUploadBatchNoFiles(t *testing.T) {
	c, w := newBatchContext(t, nil)

	h := NewImagesHandler(configs.VaultConfig{MaxFiles: 1})
	h.UploadBatch(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	if body := w.Body.String(); !strings.Contains(body, `"message":"Image upload error"`) {
		t.Fatalf("body = %s, want upload error message", body)
	}
}

func TestRequestScheme(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name      string
		forwarded string
		tls       bool
		want      string
	}{
		{"plain http", "", false, "http"},
		{"tls connection", "", true, "https"},
		{"forwarded proto wins", "https", false, "https"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			if tc.forwarded != "" {
				c.Request.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}

			if tc.tls {
				c.Request.TLS = &tls.ConnectionState{}
			}

			if got := requestScheme(c); got != tc.want {
				t.Fatalf("requestScheme = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestHost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Host = "img.example.com:8443"

	if got := requestHost(c); got != "img.example.com:8443" {
		t.Fatalf("requestHost = %q", got)
	}
}
