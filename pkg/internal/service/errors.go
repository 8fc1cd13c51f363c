package service

import "errors"

// ErrImageNotFound 表示镜像既不在磁盘上也不在元数据中.
var ErrImageNotFound = errors.New("image not found")

// UploadError 标记请求解析阶段（multipart 表单读取、表单文件打开）的错误，
// 处理器通过 errors.As 识别后映射为 400；落盘等后续阶段的错误不携带该标记，映射为 500.
type UploadError struct {
	Op  string
	Err error
}

func (e *UploadError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *UploadError) Unwrap() error { return e.Err }

// NewUploadError 用操作名包装表单解析错误.
func NewUploadError(op string, err error) *UploadError {
	return &UploadError{Op: op, Err: err}
}

// AsUploadError 在错误链上查找 UploadError.
func AsUploadError(err error) (*UploadError, bool) {
	var ue *UploadError
	if errors.As(err, &ue) {
		return ue, true
	}

	return nil, false
}
