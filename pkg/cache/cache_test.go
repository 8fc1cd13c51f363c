package cache_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/yeisme/imagevault/pkg/cache"
)

// testImageMeta 测试用的图片元数据结构体.
type testImageMeta struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// mockKVStore 模拟KV存储实现，用于基准测试.
type mockKVStore struct {
	data map[string][]byte
}

func newMockKVStore() *mockKVStore {
	return &mockKVStore{
		data: make(map[string][]byte),
	}
}

func (m *mockKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, exists := m.data[key]; exists {
		return value, nil
	}

	return nil, fmt.Errorf("key not found")
}

func (m *mockKVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockKVStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockKVStore) Exists(ctx context.Context, key string) (bool, error) {
	_, exists := m.data[key]
	return exists, nil
}

func (m *mockKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}

	return keys, nil
}

func (m *mockKVStore) Close() error {
	return nil
}

// TestNewCache 测试 NewCache 函数.
func TestNewCache(t *testing.T) {
	mockStore := newMockKVStore()
	cache := cache.NewCache(mockStore)

	if cache == nil {
		t.Fatal("NewCache returned nil")
	}
}

// TestCache_Get 测试 Get 方法.
func TestCache_Get(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 测试获取不存在的键
	_, err := cache.Get[testImageMeta](ctx, c, "nonexistent")
	if err == nil {
		t.Error("Expected error for nonexistent key")
	}

	// 设置测试数据
	meta := testImageMeta{Name: "1700000000000-photo.png", Size: 10240, ContentType: "image/png"}

	err = cache.Set(ctx, c, "image:1700000000000-photo.png", meta, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	// 获取存在的键
	retrieved, err := cache.Get[testImageMeta](ctx, c, "image:1700000000000-photo.png")
	if err != nil {
		t.Fatalf("Failed to get cache: %v", err)
	}

	if retrieved.Name != meta.Name || retrieved.Size != meta.Size || retrieved.ContentType != meta.ContentType {
		t.Errorf("Retrieved meta %+v does not match original %+v", retrieved, meta)
	}
}

// TestCache_Set 测试 Set 方法.
func TestCache_Set(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	meta := testImageMeta{Name: "1700000000001-logo.svg", Size: 2048, ContentType: "image/svg+xml"}

	err := cache.Set(ctx, c, "image:1700000000001-logo.svg", meta, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	// 验证数据是否正确存储
	data, exists := mockStore.data["image:1700000000001-logo.svg"]
	if !exists {
		t.Fatal("Data not stored in mock store")
	}

	if len(data) == 0 {
		t.Error("Stored data is empty")
	}
}

// TestCache_Delete 测试 Delete 方法.
func TestCache_Delete(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 设置数据
	meta := testImageMeta{Name: "1700000000002-banner.jpg", Size: 51200, ContentType: "image/jpeg"}

	err := cache.Set(ctx, c, "image:1700000000002-banner.jpg", meta, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	// 验证存在
	exists, err := c.Exists(ctx, "image:1700000000002-banner.jpg")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}

	if !exists {
		t.Error("Key should exist before deletion")
	}

	// 删除数据
	err = c.Delete(ctx, "image:1700000000002-banner.jpg")
	if err != nil {
		t.Fatalf("Failed to delete cache: %v", err)
	}

	// 验证不存在
	exists, err = c.Exists(ctx, "image:1700000000002-banner.jpg")
	if err != nil {
		t.Fatalf("Failed to check existence after deletion: %v", err)
	}

	if exists {
		t.Error("Key should not exist after deletion")
	}
}

// TestCache_Exists 测试 Exists 方法.
func TestCache_Exists(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 测试不存在的键
	exists, err := c.Exists(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}

	if exists {
		t.Error("Nonexistent key should not exist")
	}

	// 设置数据
	meta := testImageMeta{Name: "1700000000003-avatar.webp", Size: 4096, ContentType: "image/webp"}

	err = cache.Set(ctx, c, "image:1700000000003-avatar.webp", meta, 0)
	if err != nil {
		t.Fatalf("Failed to set cache: %v", err)
	}

	// 测试存在的键
	exists, err = c.Exists(ctx, "image:1700000000003-avatar.webp")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}

	if !exists {
		t.Error("Existing key should exist")
	}
}

// TestGetOrSet 测试 GetOrSet 方法.
func TestGetOrSet(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	callCount := 0
	getter := func() (testImageMeta, error) {
		callCount++
		return testImageMeta{Name: "1700000000004-cover.png", Size: 8192, ContentType: "image/png"}, nil
	}

	// 第一次调用，应该调用getter
	meta1, err := cache.GetOrSet(ctx, c, "image:1700000000004-cover.png", getter, 0)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("Expected getter to be called once, got %d", callCount)
	}

	// 第二次调用，应该从缓存获取
	meta2, err := cache.GetOrSet(ctx, c, "image:1700000000004-cover.png", getter, 0)
	if err != nil {
		t.Fatalf("Failed to get or set: %v", err)
	}

	if callCount != 1 {
		t.Errorf("Expected getter to be called only once, got %d", callCount)
	}

	// 验证两次结果相同
	if meta1.Name != meta2.Name || meta1.Size != meta2.Size || meta1.ContentType != meta2.ContentType {
		t.Errorf("Results don't match: %+v vs %+v", meta1, meta2)
	}
}

// TestGetOrSet_GetterError 测试 GetOrSet 方法中 getter 返回错误的情况.
func TestGetOrSet_GetterError(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	getter := func() (testImageMeta, error) {
		return testImageMeta{}, errors.New("getter error")
	}

	_, err := cache.GetOrSet(ctx, c, "image:error", getter, 0)
	if err == nil {
		t.Error("Expected error from getter")
	}

	if err.Error() != "getter error" {
		t.Errorf("Expected 'getter error', got '%s'", err.Error())
	}
}

// TestCache_Clear 测试 Clear 方法.
func TestCache_Clear(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 设置多个数据
	metas := []testImageMeta{
		{Name: "1700000000005-a.png", Size: 1024, ContentType: "image/png"},
		{Name: "1700000000006-b.jpg", Size: 2048, ContentType: "image/jpeg"},
		{Name: "1700000000007-c.gif", Size: 4096, ContentType: "image/gif"},
	}

	for i, meta := range metas {
		key := "image:" + meta.Name

		err := cache.Set(ctx, c, key, meta, 0)
		if err != nil {
			t.Fatalf("Failed to set cache for image %d: %v", i, err)
		}
	}

	// 验证数据存在
	if len(mockStore.data) != len(metas) {
		t.Errorf("Expected %d items, got %d", len(metas), len(mockStore.data))
	}

	// 清空缓存
	err := c.Clear(ctx)
	if err != nil {
		t.Fatalf("Failed to clear cache: %v", err)
	}

	// 验证数据被清空
	if len(mockStore.data) != 0 {
		t.Errorf("Expected 0 items after clear, got %d", len(mockStore.data))
	}
}

// TestCache_GenericTypes 测试缓存对不同数据类型的支持.
func TestCache_GenericTypes(t *testing.T) {
	mockStore := newMockKVStore()
	c := cache.NewCache(mockStore)
	ctx := context.Background()

	// 测试字符串类型
	err := cache.Set(ctx, c, "string:key", "hello world", 0)
	if err != nil {
		t.Fatalf("Failed to set string: %v", err)
	}

	str, err := cache.Get[string](ctx, c, "string:key")
	if err != nil {
		t.Fatalf("Failed to get string: %v", err)
	}

	if str != "hello world" {
		t.Errorf("Expected 'hello world', got '%s'", str)
	}

	// 测试整数类型
	err = cache.Set(ctx, c, "int:key", 42, 0)
	if err != nil {
		t.Fatalf("Failed to set int: %v", err)
	}

	num, err := cache.Get[int](ctx, c, "int:key")
	if err != nil {
		t.Fatalf("Failed to get int: %v", err)
	}

	if num != 42 {
		t.Errorf("Expected 42, got %d", num)
	}

	// 测试切片类型
	slice := []string{"a", "b", "c"}

	err = cache.Set(ctx, c, "slice:key", slice, 0)
	if err != nil {
		t.Fatalf("Failed to set slice: %v", err)
	}

	retrievedSlice, err := cache.Get[[]string](ctx, c, "slice:key")
	if err != nil {
		t.Fatalf("Failed to get slice: %v", err)
	}

	if len(retrievedSlice) != len(slice) {
		t.Errorf("Slice length mismatch: expected %d, got %d", len(slice), len(retrievedSlice))
	}

	for i, v := range slice {
		if retrievedSlice[i] != v {
			t.Errorf("Slice element %d mismatch: expected %s, got %s", i, v, retrievedSlice[i])
		}
	}
}
