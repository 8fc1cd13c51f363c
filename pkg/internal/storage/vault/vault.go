// Package vault 提供镜像文件的本地磁盘存储，覆盖保存、回收与恢复操作.
package vault

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yeisme/imagevault/pkg/configs"
	nlog "github.com/yeisme/imagevault/pkg/log"
)

const dirPerm = 0o755

// ErrInvalidName 名称含路径分隔符或保留名时返回.
var ErrInvalidName = errors.New("invalid image name")

// Entry 描述存储中的一个镜像文件.
type Entry struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// Store 基于本地文件系统的镜像存储.
// 存储名由上传时的毫秒时间戳加百分号编码的原始文件名构成，
// 编码保证名称不含路径分隔符，同一毫秒内的同名上传会相互覆盖.
type Store struct {
	cfg configs.VaultConfig
}

// New 创建存储实例并确保上传根目录与回收目录存在.
func New(cfg configs.VaultConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Root, dirPerm); err != nil {
		return nil, fmt.Errorf("create vault root: %w", err)
	}

	if err := os.MkdirAll(cfg.TrashRoot(), dirPerm); err != nil {
		return nil, fmt.Errorf("create trash dir: %w", err)
	}

	nlog.Logger().Info().Str("root", cfg.Root).Msg("vault 存储已就绪")

	return &Store{cfg: cfg}, nil
}

// checkName 校验存储名：拒绝空名、点名以及任何包含路径分隔符的名称.
func (s *Store) checkName(name string) error {
	if name == "" || name == "." || name == ".." || name == s.cfg.TrashDir {
		return ErrInvalidName
	}

	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidName
	}

	return nil
}

// Path 返回镜像的磁盘路径.
func (s *Store) Path(name string) string {
	return filepath.Join(s.cfg.Root, name)
}

func (s *Store) trashPath(name string) string {
	return filepath.Join(s.cfg.TrashRoot(), name)
}

// Save 将 src 写入存储并返回写入字节数，同名文件直接覆盖.
func (s *Store) Save(name string, src io.Reader) (int64, error) {
	if err := s.checkName(name); err != nil {
		return 0, err
	}

	dst, err := os.Create(s.Path(name))
	if err != nil {
		return 0, fmt.Errorf("create image file: %w", err)
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return n, fmt.Errorf("write image file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return n, fmt.Errorf("close image file: %w", err)
	}

	return n, nil
}

// Open 打开镜像文件用于读取.
func (s *Store) Open(name string) (*os.File, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("open image file: %w", err)
	}

	return f, nil
}

// Stat 返回镜像文件信息.
func (s *Store) Stat(name string) (os.FileInfo, error) {
	if err := s.checkName(name); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("stat image file: %w", err)
	}

	return info, nil
}

// Exists 检查镜像是否存在.
func (s *Store) Exists(name string) (bool, error) {
	if err := s.checkName(name); err != nil {
		return false, err
	}

	if _, err := os.Stat(s.Path(name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("stat image file: %w", err)
	}

	return true, nil
}

// Remove 永久删除镜像文件.
func (s *Store) Remove(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	if err := os.Remove(s.Path(name)); err != nil {
		return fmt.Errorf("remove image file: %w", err)
	}

	return nil
}

// MoveToTrash 将镜像移入回收目录，等待恢复或清理.
// 回收目录中文件的修改时间记录进入回收的时刻，保留期清理据此判断.
func (s *Store) MoveToTrash(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	if err := os.Rename(s.Path(name), s.trashPath(name)); err != nil {
		return fmt.Errorf("trash image file: %w", err)
	}

	now := time.Now()
	if err := os.Chtimes(s.trashPath(name), now, now); err != nil {
		return fmt.Errorf("touch trashed file: %w", err)
	}

	return nil
}

// RemoveFromTrash 永久删除回收目录中的镜像文件.
func (s *Store) RemoveFromTrash(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	if err := os.Remove(s.trashPath(name)); err != nil {
		return fmt.Errorf("remove trashed file: %w", err)
	}

	return nil
}

// Restore 将回收目录中的镜像移回存储.
func (s *Store) Restore(name string) error {
	if err := s.checkName(name); err != nil {
		return err
	}

	if err := os.Rename(s.trashPath(name), s.Path(name)); err != nil {
		return fmt.Errorf("restore image file: %w", err)
	}

	return nil
}

// List 列出存储中的镜像（不含回收目录）.
func (s *Store) List() ([]Entry, error) {
	return s.listDir(s.cfg.Root)
}

// ListTrash 列出回收目录中的镜像.
func (s *Store) ListTrash() ([]Entry, error) {
	return s.listDir(s.cfg.TrashRoot())
}

// listDir 读取单层目录并收集文件条目，跳过子目录.
func (s *Store) listDir(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read vault dir: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))

	for _, d := range dirents {
		if d.IsDir() {
			continue
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				// 列目录与删除并发时条目可能已消失
				continue
			}

			return nil, fmt.Errorf("stat vault entry: %w", err)
		}

		entries = append(entries, Entry{
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return entries, nil
}

// PurgeTrash 删除回收目录中早于 cutoff 的文件，返回清除数量.
func (s *Store) PurgeTrash(cutoff time.Time) (int, error) {
	entries, err := s.ListTrash()
	if err != nil {
		return 0, err
	}

	purged := 0

	for _, e := range entries {
		if e.ModTime.After(cutoff) {
			continue
		}

		if err := os.Remove(s.trashPath(e.Name)); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return purged, fmt.Errorf("purge trash file: %w", err)
		}

		purged++
	}

	return purged, nil
}

// Root 返回上传根目录.
func (s *Store) Root() string {
	return s.cfg.Root
}

// Config 返回存储配置.
func (s *Store) Config() configs.VaultConfig {
	return s.cfg
}
