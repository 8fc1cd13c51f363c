package types

// UploadImageResponse 单图上传成功响应.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// BatchUploadItem 批量上传中单个文件的结果.
type BatchUploadItem struct {
	OriginalName string `json:"original_name"`
	Name         string `json:"name,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
}

// BatchUploadResponse 批量上传响应.
type BatchUploadResponse struct {
	Results    []BatchUploadItem `json:"results"`
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
}
