// Package assets 把存储的图片文件名解析为前端可访问的 URL。
package assets

import (
	"github.com/clashcrash/board_go_server/config"
)

type Resolver struct {
	baseURL           string
	defaultProfileImg string
}

func NewResolver(cfg *config.AssetsConfig) *Resolver {
	return &Resolver{
		baseURL:           cfg.BaseURL,
		defaultProfileImg: cfg.DefaultProfileImg,
	}
}

// URL 文件名前拼接图片网关前缀
func (r *Resolver) URL(name string) string {
	if name == "" {
		return ""
	}
	return r.baseURL + name
}

// ProfileURL 头像地址，未设置头像时回退到默认图
func (r *Resolver) ProfileURL(profileImg *string) string {
	if profileImg == nil || *profileImg == "" {
		return r.baseURL + r.defaultProfileImg
	}
	return r.baseURL + *profileImg
}
