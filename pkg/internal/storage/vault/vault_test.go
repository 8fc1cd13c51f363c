package vault_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
)

func newTestStore(t *testing.T) *vault.Store {
	t.Helper()

	cfg := configs.VaultConfig{
		Root:           filepath.Join(t.TempDir(), "uploads"),
		MaxFiles:       configs.DefaultVaultMaxFiles,
		PublicPath:     configs.DefaultVaultPublicPath,
		TrashDir:       configs.DefaultVaultTrashDir,
		TrashRetention: configs.DefaultVaultTrashRetention,
	}

	store, err := vault.New(cfg)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	return store
}

func TestNewCreatesDirectories(t *testing.T) {
	store := newTestStore(t)

	info, err := os.Stat(store.Root())
	if err != nil || !info.IsDir() {
		t.Fatalf("vault root missing: %v", err)
	}

	cfg := store.Config()
	info, err = os.Stat(cfg.TrashRoot())
	if err != nil || !info.IsDir() {
		t.Fatalf("trash dir missing: %v", err)
	}
}

func TestSaveOpenRoundtrip(t *testing.T) {
	store := newTestStore(t)

	n, err := store.Save("1755912345678-photo.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if n != int64(len("png-bytes")) {
		t.Fatalf("saved %d bytes, want %d", n, len("png-bytes"))
	}

	f, err := store.Open("1755912345678-photo.png")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if string(data) != "png-bytes" {
		t.Fatalf("read %q, want %q", data, "png-bytes")
	}

	info, err := store.Stat("1755912345678-photo.png")
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}

	if info.Size() != n {
		t.Fatalf("stat size %d, want %d", info.Size(), n)
	}
}

// 同一毫秒内的同名上传产生相同存储名，后写覆盖前写.
func TestSaveOverwritesSameName(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("1755912345678-a.png", strings.NewReader("first")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := store.Save("1755912345678-a.png", strings.NewReader("second")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	f, err := store.Open("1755912345678-a.png")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	data, _ := io.ReadAll(f)
	if string(data) != "second" {
		t.Fatalf("read %q, want %q", data, "second")
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("list has %d entries, want 1", len(entries))
	}
}

func TestSaveRejectsUnsafeNames(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"", ".", "..", "a/b.png", `a\b.png`, configs.DefaultVaultTrashDir} {
		if _, err := store.Save(name, strings.NewReader("x")); !errors.Is(err, vault.ErrInvalidName) {
			t.Fatalf("save %q: err = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestTrashAndRestore(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("1755912345678-a.png", strings.NewReader("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.MoveToTrash("1755912345678-a.png"); err != nil {
		t.Fatalf("trash failed: %v", err)
	}

	exists, err := store.Exists("1755912345678-a.png")
	if err != nil || exists {
		t.Fatalf("exists = %v, %v; want false, nil", exists, err)
	}

	trashed, err := store.ListTrash()
	if err != nil || len(trashed) != 1 {
		t.Fatalf("trash list = %v, %v; want one entry", trashed, err)
	}

	if err := store.Restore("1755912345678-a.png"); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	exists, err = store.Exists("1755912345678-a.png")
	if err != nil || !exists {
		t.Fatalf("exists = %v, %v; want true, nil", exists, err)
	}
}

func TestListExcludesTrash(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("1755912345678-a.png", strings.NewReader("a")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := store.Save("1755912345679-b.png", strings.NewReader("b")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := store.MoveToTrash("1755912345679-b.png"); err != nil {
		t.Fatalf("trash failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(entries) != 1 || entries[0].Name != "1755912345678-a.png" {
		t.Fatalf("list = %v, want only 1755912345678-a.png", entries)
	}
}

func TestPurgeTrash(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("1755912345678-old.png", strings.NewReader("x")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := store.Save("1755912345679-new.png", strings.NewReader("y")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"1755912345678-old.png", "1755912345679-new.png"} {
		if err := store.MoveToTrash(name); err != nil {
			t.Fatalf("trash failed: %v", err)
		}
	}

	// 把 old 的修改时间拨回保留期之前
	cfg := store.Config()
	oldPath := filepath.Join(cfg.TrashRoot(), "1755912345678-old.png")
	past := time.Now().Add(-48 * time.Hour)

	if err := os.Chtimes(oldPath, past, past); err != nil {
		t.Fatalf("chtimes failed: %v", err)
	}

	purged, err := store.PurgeTrash(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}

	if purged != 1 {
		t.Fatalf("purged %d, want 1", purged)
	}

	trashed, err := store.ListTrash()
	if err != nil || len(trashed) != 1 || trashed[0].Name != "1755912345679-new.png" {
		t.Fatalf("trash list = %v, %v; want only new.png", trashed, err)
	}
}
