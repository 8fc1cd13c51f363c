package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/storage/vault"
)

func TestStoredNameFormat(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	name := StoredName("my photo.png", now)

	want := "1700000000123-my%20photo.png"
	if name != want {
		t.Fatalf("StoredName = %q, want %q", name, want)
	}

	millis, _, ok := strings.Cut(name, "-")
	if !ok {
		t.Fatalf("stored name %q missing millis prefix", name)
	}

	if _, err := strconv.ParseInt(millis, 10, 64); err != nil {
		t.Fatalf("millis prefix %q not numeric: %v", millis, err)
	}
}

func TestStoredNameNeutralizesSeparators(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	for _, original := range []string{
		"../../../etc/passwd",
		"a/b/c.png",
		`..\..\evil.sh`,
		"/absolute.png",
	} {
		name := StoredName(original, now)
		if strings.ContainsAny(name, `/\`) {
			t.Errorf("StoredName(%q) = %q contains a path separator", original, name)
		}
	}
}

func TestStoredNameSameMillisSameName(t *testing.T) {
	// 同一毫秒内的同名上传得到相同存储名，后写覆盖前写
	now := time.UnixMilli(1700000000123)

	a := StoredName("dup.png", now)
	b := StoredName("dup.png", now)

	if a != b {
		t.Fatalf("same millis + same name should collide: %q vs %q", a, b)
	}
}

func TestOriginalNameRoundtrip(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	for _, original := range []string{
		"simple.png",
		"my photo.png",
		"каталог.png",
		"100%.jpg",
		"a/b.png",
	} {
		name := StoredName(original, now)
		if got := originalNameFromStored(name); got != original {
			t.Errorf("roundtrip %q -> %q -> %q", original, name, got)
		}
	}
}

func TestStoredAtFromName(t *testing.T) {
	got := storedAtFromName("1700000000123-x.png")
	if want := time.UnixMilli(1700000000123).UTC(); !got.Equal(want) {
		t.Fatalf("storedAtFromName = %v, want %v", got, want)
	}

	if !storedAtFromName("not-a-millis.png").IsZero() {
		t.Fatal("non-numeric prefix should yield zero time")
	}

	if !storedAtFromName("plain").IsZero() {
		t.Fatal("name without separator should yield zero time")
	}
}

func TestPublicURLDoubleEncoding(t *testing.T) {
	cfg := configs.VaultConfig{
		Root:           t.TempDir(),
		MaxFiles:       configs.DefaultVaultMaxFiles,
		PublicPath:     "/uploads",
		TrashDir:       configs.DefaultVaultTrashDir,
		TrashRetention: configs.DefaultVaultTrashRetention,
	}

	vs, err := vault.New(cfg)
	if err != nil {
		t.Fatalf("vault.New: %v", err)
	}

	is := &ImageService{vault: vs}

	// 存储名中的 %20 在 URL 路径段中被二次编码为 %2520
	got := is.publicURL("http", "img.example.com", "1700000000123-my%20photo.png")

	want := "http://img.example.com/uploads/1700000000123-my%2520photo.png"
	if got != want {
		t.Fatalf("publicURL = %q, want %q", got, want)
	}
}

func TestBuildListOrder(t *testing.T) {
	cases := []struct {
		sortBy string
		order  string
		want   string
	}{
		{"", "", "stored_at DESC"},
		{"size", "asc", "size ASC"},
		{"name", "ASC", "name ASC"},
		{"bogus", "desc", "stored_at DESC"},
	}

	for _, c := range cases {
		if got := buildListOrder(c.sortBy, c.order); got != c.want {
			t.Errorf("buildListOrder(%q, %q) = %q, want %q", c.sortBy, c.order, got, c.want)
		}
	}
}
