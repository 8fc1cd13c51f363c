package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
)

// formFileHeader 通过真实的 multipart 编解码构造 FileHeader.
func formFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}

	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}

	_ = w.Close()

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, fh, err := req.FormFile(field)
	if err != nil {
		t.Fatalf("read back form file: %v", err)
	}

	return fh
}

func newTestImageService(t *testing.T) *ImageService {
	t.Helper()

	cfg := configs.VaultConfig{
		Root:           t.TempDir(),
		MaxFiles:       configs.DefaultVaultMaxFiles,
		PublicPath:     configs.DefaultVaultPublicPath,
		TrashDir:       configs.DefaultVaultTrashDir,
		TrashRetention: configs.DefaultVaultTrashRetention,
	}

	vs, err := vault.New(cfg)
	if err != nil {
		t.Fatalf("vault.New: %v", err)
	}

	// 事件开关默认关闭（零值配置），SaveImage 不会触达 MQ 客户端
	return &ImageService{vault: vs}
}

func TestSaveImageSuccess(t *testing.T) {
	svc := newTestImageService(t)
	content := bytes.Repeat([]byte{0x89, 0x50, 0x4e, 0x47}, 2560) // 10KB

	fh := formFileHeader(t, "image", "photo.png", content)

	info, err := svc.SaveImage(context.Background(), fh, "https", "example.com", "upload")
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}

	if !regexp.MustCompile(`^\d+-photo\.png$`).MatchString(info.Name) {
		t.Fatalf("stored name %q does not match <millis>-photo.png", info.Name)
	}

	if !strings.HasPrefix(info.URL, "https://example.com/uploads/") {
		t.Fatalf("imageUrl = %q, want https://example.com/uploads/... prefix", info.URL)
	}

	st, err := os.Stat(svc.vault.Path(info.Name))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if st.Size() != int64(len(content)) || info.Size != int64(len(content)) {
		t.Fatalf("size = %d/%d, want %d", st.Size(), info.Size, len(content))
	}
}

func TestSaveImageTwiceProducesDistinctNames(t *testing.T) {
	svc := newTestImageService(t)

	fh := formFileHeader(t, "image", "a.png", []byte("same bytes"))

	first, err := svc.SaveImage(context.Background(), fh, "http", "localhost", "upload")
	if err != nil {
		t.Fatalf("first SaveImage: %v", err)
	}

	// 存储名以接收毫秒为前缀；跨毫秒的两次上传互不覆盖
	time.Sleep(2 * time.Millisecond)

	second, err := svc.SaveImage(context.Background(), fh, "http", "localhost", "upload")
	if err != nil {
		t.Fatalf("second SaveImage: %v", err)
	}

	if second.Name == first.Name {
		t.Fatalf("uploads in different milliseconds must not collide: %q", second.Name)
	}

	if second.URL == first.URL {
		t.Fatalf("distinct names must yield distinct URLs: %q", second.URL)
	}
}

func TestSaveImageOpenFailureIsUploadError(t *testing.T) {
	svc := newTestImageService(t)

	// 无后备内容的 FileHeader 打开必然失败，归入表单解析类错误
	fh := &multipart.FileHeader{Filename: "ghost.png"}

	_, err := svc.SaveImage(context.Background(), fh, "http", "localhost", "upload")
	if err == nil {
		t.Fatal("expected error")
	}

	if _, ok := AsUploadError(err); !ok {
		t.Fatalf("open failure should classify as upload error, got %v", err)
	}
}

func TestSaveImageWriteFailureIsProcessingError(t *testing.T) {
	svc := newTestImageService(t)

	// 用普通文件顶替上传根目录，落盘打开必然失败
	root := svc.vault.Root()
	if err := os.RemoveAll(root); err != nil {
		t.Fatalf("remove root: %v", err)
	}

	if err := os.WriteFile(root, []byte("not a directory"), 0o600); err != nil {
		t.Fatalf("plant file: %v", err)
	}

	fh := formFileHeader(t, "image", "photo.png", []byte("data"))

	_, err := svc.SaveImage(context.Background(), fh, "http", "localhost", "upload")
	if err == nil {
		t.Fatal("expected error")
	}

	if _, ok := AsUploadError(err); ok {
		t.Fatalf("disk failure must not classify as upload error: %v", err)
	}
}

func TestSaveImageBatchPartialFailure(t *testing.T) {
	svc := newTestImageService(t)

	good := formFileHeader(t, "images", "ok.png", []byte("fine"))
	bad := &multipart.FileHeader{Filename: "broken.png"}

	resp, err := svc.SaveImageBatch(context.Background(), []*multipart.FileHeader{good, bad}, "http", "localhost")
	if err != nil {
		t.Fatalf("SaveImageBatch: %v", err)
	}

	if resp.Total != 2 || resp.Successful != 1 || resp.Failed != 1 {
		t.Fatalf("summary = %d/%d/%d, want 2/1/1", resp.Total, resp.Successful, resp.Failed)
	}

	if !resp.Results[0].Success || resp.Results[0].ImageURL == "" {
		t.Fatalf("good file result: %+v", resp.Results[0])
	}

	if resp.Results[1].Success || resp.Results[1].Error == "" {
		t.Fatalf("bad file result: %+v", resp.Results[1])
	}
}
