package dto

// UploadImgData 图片上传结果：存储名供后续发帖/评论引用，URL 供即时预览
type UploadImgData struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
