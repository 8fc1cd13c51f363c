package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/storage"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
	"github.com/yeisme/imagevault/pkg/middleware"
)

// newPublicEngine 构造只挂根路由与存储注入的引擎，公开路径服务于临时上传根目录.
func newPublicEngine(t *testing.T) (*gin.Engine, configs.VaultConfig) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := configs.VaultConfig{
		Root:           t.TempDir(),
		MaxFiles:       configs.DefaultVaultMaxFiles,
		PublicPath:     configs.DefaultVaultPublicPath,
		TrashDir:       configs.DefaultVaultTrashDir,
		TrashRetention: configs.DefaultVaultTrashRetention,
	}

	vs, err := vault.New(cfg)
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}

	e := gin.New()
	e.Use(middleware.StorageMiddleware(&storage.Manager{Vault: vs}))
	RegisterRootRoutes(e, &configs.AppConfig{Vault: cfg})

	return e, cfg
}

func TestPublicImageServesStoredFile(t *testing.T) {
	e, cfg := newPublicEngine(t)

	name := "1700000000000-photo.png"
	if err := os.WriteFile(filepath.Join(cfg.Root, name), []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/"+name, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if got := w.Body.String(); got != "png-bytes" {
		t.Fatalf("body = %q, want stored bytes", got)
	}
}

func TestPublicImageTrashedNotReachable(t *testing.T) {
	e, cfg := newPublicEngine(t)

	name := "1700000000000-secret.png"
	if err := os.WriteFile(filepath.Join(cfg.TrashRoot(), name), []byte("trashed"), 0o644); err != nil {
		t.Fatalf("write trashed image: %v", err)
	}

	// 回收目录及其任何访问形式都不能通过公开路径到达
	for _, path := range []string{
		"/uploads/" + cfg.TrashDir + "/" + name,
		"/uploads/" + cfg.TrashDir,
		"/uploads/..%2F" + cfg.TrashDir + "%2F" + name,
	} {
		w := httptest.NewRecorder()
		e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code == http.StatusOK {
			t.Fatalf("GET %s = 200, trashed image must not be reachable", path)
		}
	}
}

func TestPublicImageMissingReturnsNotFound(t *testing.T) {
	e, _ := newPublicEngine(t)

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/uploads/1700000000000-missing.png", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
