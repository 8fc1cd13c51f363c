package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/yeisme/imagevault/pkg/configs"
	"github.com/yeisme/imagevault/pkg/internal/model"
	"github.com/yeisme/imagevault/pkg/internal/types"
	nlog "github.com/yeisme/imagevault/pkg/log"
	"github.com/yeisme/imagevault/pkg/queue"
)

// 全局单例的 ULID 熵源，使用单调递增策略，确保同一毫秒内生成的 ULID 具有排序稳定性。
// MonotonicEntropy 本身不是并发安全的，访问必须持有 ulidMu。
var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(crand.Reader, 0)
)

// ErrShareNotFound 表示分享不存在、已过期或已撤销.
var ErrShareNotFound = errors.New("share not found")

const (
	shareKeyPrefix = "shares:v1:"

	// DefaultShareTTL 未指定有效期时的默认分享时长.
	DefaultShareTTL = 24 * time.Hour
)

// 缓存 TTL 策略常量：集中管理，避免魔数。
const (
	shareCacheDefaultTTL = 10 * time.Minute // 分享本身不过期时的默认缓存时长
	shareCacheMaxTTL     = 30 * time.Minute // 单条分享缓存的最长缓存时间上限
)

// ShareService 负责分享令牌业务：DB 为真源，KV 作轻缓存加速公开端点的令牌解析.
type ShareService struct{ *ImageService }

// NewShareService 创建并返回一个新的 ShareService 实例.
func NewShareService(c context.Context) *ShareService { return &ShareService{NewImageService(c)} }

// CreateShare 为指定图片创建分享令牌，返回分享信息.
func (s *ShareService) CreateShare(ctx context.Context, name string, req *types.CreateShareRequest, scheme, host string) (*types.CreateShareResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	// 目标图片必须存在于上传根目录（回收站中的图片不可分享）
	exists, err := s.vault.Exists(name)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, ErrImageNotFound
	}

	now := time.Now().UTC()

	ttl := DefaultShareTTL
	if req != nil && req.ExpireSeconds > 0 {
		ttl = time.Duration(req.ExpireSeconds) * time.Second
	}

	expires := now.Add(ttl)

	rec := &model.ShareRecord{
		Token:     newShareToken(now),
		Name:      name,
		CreatedAt: now,
		ExpiresAt: &expires,
	}

	// 写 DB
	if err := s.dbClient.GetDB().WithContext(ctx).Create(model.FromRecord(rec)).Error; err != nil {
		return nil, fmt.Errorf("create share: %w", err)
	}

	// 轻缓存：失败不影响创建结果
	_ = s.cacheShare(ctx, rec)

	s.publishShareCreated(ctx, queue.ShareCreatedPayload{Name: name, Token: rec.Token, ExpiresAt: expires})

	return &types.CreateShareResponse{Share: s.shareInfo(rec, scheme, host)}, nil
}

// ResolveShare 解析分享令牌，返回其指向的分享记录.
// 优先读取 KV 缓存，未命中或缓存过期时从 DB 回源并回填.
func (s *ShareService) ResolveShare(ctx context.Context, token string) (*model.ShareRecord, error) {
	if token == "" {
		return nil, ErrShareNotFound
	}

	now := time.Now().UTC()

	// 优先缓存
	var cached model.ShareRecord
	if ok, err := s.kvGet(ctx, makeShareKey(token), &cached); err == nil && ok {
		if shareExpired(now, cached.ExpiresAt) {
			_ = s.kvDel(ctx, makeShareKey(token))
		} else {
			return &cached, nil
		}
	}

	// DB 回源
	var sh model.Share
	if err := s.dbClient.GetDB().WithContext(ctx).Where("token = ?", token).First(&sh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShareNotFound
		}

		return nil, fmt.Errorf("load share %s: %w", token, err)
	}

	if !sh.Active(now) {
		return nil, ErrShareNotFound
	}

	rec := sh.ToRecord()

	// 回填缓存
	_ = s.cacheShare(ctx, rec)

	return rec, nil
}

// ListShares 列出指向某图片的分享（不含已过期与已撤销的）.
func (s *ShareService) ListShares(ctx context.Context, name, scheme, host string) (*types.ListSharesResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()

	var rows []model.Share
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("name = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)", name, now).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list shares: %w", err)
	}

	shares := make([]types.ShareInfo, 0, len(rows))
	for i := range rows {
		shares = append(shares, s.shareInfo(rows[i].ToRecord(), scheme, host))
	}

	return &types.ListSharesResponse{Shares: shares}, nil
}

// RevokeShare 撤销分享令牌：DB 标记撤销时间并删除缓存.
func (s *ShareService) RevokeShare(ctx context.Context, token string) error {
	if token == "" {
		return ErrShareNotFound
	}

	now := time.Now().UTC()

	tx := s.dbClient.GetDB().WithContext(ctx).Model(&model.Share{}).
		Where("token = ? AND revoked_at IS NULL", token).Update("revoked_at", now)
	if tx.Error != nil {
		return fmt.Errorf("revoke share %s: %w", token, tx.Error)
	}

	if tx.RowsAffected == 0 {
		return ErrShareNotFound
	}

	// 删缓存
	_ = s.kvDel(ctx, makeShareKey(token))

	s.publishShareRevoked(ctx, queue.ShareRevokedPayload{Token: token})

	return nil
}

// ---- 内部工具 ----

// newShareToken 生成 ULID 字符串作为分享令牌。
// 使用单例熵源以支持同一毫秒内的单调递增。
func newShareToken(t time.Time) string {
	ulidMu.Lock()
	defer ulidMu.Unlock()

	// 注意：ULID 使用毫秒时间戳，因此应传入 time.Now().UTC() 或同等时间。
	return ulid.MustNew(ulid.Timestamp(t), ulidEntropy).String()
}

func makeShareKey(token string) string { return shareKeyPrefix + token }

func shareExpired(now time.Time, exp *time.Time) bool {
	return exp != nil && !now.Before(*exp)
}

// shareInfo 构造对外的分享信息，分享地址形如 <scheme>://<host>/s/<token>.
func (s *ShareService) shareInfo(rec *model.ShareRecord, scheme, host string) types.ShareInfo {
	return types.ShareInfo{
		Token:     rec.Token,
		Name:      rec.Name,
		ShareURL:  scheme + "://" + host + "/s/" + rec.Token,
		CreatedAt: rec.CreatedAt,
		ExpiresAt: rec.ExpiresAt,
	}
}

// cacheTTLFromExpire 根据分享过期时间计算缓存 TTL：
//   - 分享不过期：返回默认 TTL；
//   - 已设置过期：返回 [0, shareCacheMaxTTL] 范围内的值，避免长时间缓存导致撤销不生效。
func cacheTTLFromExpire(exp *time.Time) time.Duration {
	if exp == nil {
		return shareCacheDefaultTTL
	}

	d := time.Until(*exp)
	if d <= 0 {
		return 0
	}

	if d > shareCacheMaxTTL {
		return shareCacheMaxTTL
	}

	return d
}

// kvGet 通过 key 获取并反序列化值到 v，返回是否命中。
func (s *ShareService) kvGet(ctx context.Context, key string, v any) (bool, error) {
	b, err := s.kvClient.Get(ctx, key)
	if err != nil {
		return false, err
	}

	if err := sonic.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}

	return true, nil
}

// kvDel 删除 key。
func (s *ShareService) kvDel(ctx context.Context, key string) error {
	return s.kvClient.Delete(ctx, key)
}

// cacheShare 将 rec 缓存到 KV，TTL 按过期时间裁剪.
func (s *ShareService) cacheShare(ctx context.Context, rec *model.ShareRecord) error {
	if rec == nil {
		return nil
	}

	ttl := cacheTTLFromExpire(rec.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	b, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal share %s: %w", rec.Token, err)
	}

	return s.kvClient.Set(ctx, makeShareKey(rec.Token), b, ttl)
}

// publishShareCreated 发布分享创建事件，失败仅记录日志.
func (s *ShareService) publishShareCreated(ctx context.Context, payload queue.ShareCreatedPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Share.Created {
		return
	}

	if err := queue.PublishShareCreated(s.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicShareCreated).Msg("publish share created event failed")
	}
}

// publishShareRevoked 发布分享撤销事件，失败仅记录日志.
func (s *ShareService) publishShareRevoked(ctx context.Context, payload queue.ShareRevokedPayload) {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Share.Revoked {
		return
	}

	if err := queue.PublishShareRevoked(s.mqClient.Publisher(), payload, eventOptions(ctx)...); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", queue.TopicShareRevoked).Msg("publish share revoked event failed")
	}
}
