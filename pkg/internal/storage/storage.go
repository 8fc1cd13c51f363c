// Package storage 聚合镜像服务的持久化资源：本地 vault、元数据库、KV、消息队列与可选的 S3 副本.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	store := mgr.GetVaultStore()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yeisme/imagevault/pkg/configs"
	dbc "github.com/yeisme/imagevault/pkg/internal/storage/db"
	kvc "github.com/yeisme/imagevault/pkg/internal/storage/kv"
	mqc "github.com/yeisme/imagevault/pkg/internal/storage/mq"
	replicac "github.com/yeisme/imagevault/pkg/internal/storage/replica"
	vaultc "github.com/yeisme/imagevault/pkg/internal/storage/vault"
	nlog "github.com/yeisme/imagevault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	Vault   *vaultc.Store
	DB      *dbc.Client
	KV      *kvc.Client
	MQ      *mqc.Client
	Replica *replicac.Client // 仅在 replica.enabled 时非 nil
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// Vault
		vs, e := vaultc.New(cfg.Vault)
		if e != nil {
			err = fmt.Errorf("init vault: %w", e)
			return
		}

		m.Vault = vs

		// DB
		dbi, e := dbc.New(ctx, &cfg.DB)
		if e != nil {
			err = fmt.Errorf("init db: %w", e)
			return
		}

		m.DB = dbi

		// KV
		kvi, e := kvc.NewKVClient(ctx, &cfg.KV)
		if e != nil {
			err = fmt.Errorf("init kv: %w", e)
			return
		}

		m.KV = kvi

		// MQ
		mqi, e := mqc.New(ctx)
		if e != nil {
			err = fmt.Errorf("init mq: %w", e)
			return
		}

		m.MQ = mqi

		// Replica（可选）
		if cfg.Replica.Enabled {
			ri, e := replicac.New(ctx, &cfg.Replica)
			if e != nil {
				err = fmt.Errorf("init replica: %w", e)
				return
			}

			m.Replica = ri
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetVaultStore 获取本地镜像存储.
func (m *Manager) GetVaultStore() *vaultc.Store {
	return m.Vault
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetKVClient 获取 KV 客户端.
func (m *Manager) GetKVClient() *kvc.Client {
	return m.KV
}

// GetMQClient 获取 MQ 客户端.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// GetReplicaClient 获取 S3 副本客户端，未启用时返回 nil.
func (m *Manager) GetReplicaClient() *replicac.Client {
	return m.Replica
}

// Close 依次关闭各存储资源，返回最后一个错误.
func (m *Manager) Close() error {
	var err error

	if m.MQ != nil {
		if e := m.MQ.Close(); e != nil {
			err = e
		}
	}

	if m.KV != nil {
		if e := m.KV.Close(); e != nil {
			err = e
		}
	}

	if m.Replica != nil {
		if e := m.Replica.Close(); e != nil {
			err = e
		}
	}

	if m.DB != nil {
		if e := m.DB.Close(); e != nil {
			err = e
		}
	}

	return err
}
