package types

// ImageMetaResponse 单镜像元数据响应.
type ImageMetaResponse struct {
	Image ImageInfo `json:"image"`
	// OnDisk 本地存储中是否存在实际文件
	OnDisk bool `json:"on_disk"`
	// Trashed 是否处于回收目录
	Trashed bool `json:"trashed"`
}
