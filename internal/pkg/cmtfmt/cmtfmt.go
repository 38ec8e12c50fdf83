// Package cmtfmt 维护评论内容的打包格式：正文、可选后缀标记（如编辑/删除标记）、
// 可选图片 URL 被编码为单个持久化字符串，可无损解回。
package cmtfmt

import (
	"strings"
)

// Sep 字段分隔符。正文中不允许出现该控制字符。
const Sep = "\x1f"

const (
	tagMarker = 'm'
	tagImg    = 'i'
)

// 常用后缀标记
const (
	MarkerEdited  = "(*已编辑)"
	MarkerDeleted = "(*已删除)"
)

// Parts 解包后的评论内容
type Parts struct {
	Content string
	Marker  string
	Img     string
}

// Make 将正文、标记、图片 URL 打包为持久化字符串。
// 空的标记和图片不占位，纯文本评论的存储形态就是正文本身。
func Make(content, marker, img string) string {
	var b strings.Builder
	b.WriteString(content)
	if marker != "" {
		b.WriteString(Sep)
		b.WriteByte(tagMarker)
		b.WriteString(marker)
	}
	if img != "" {
		b.WriteString(Sep)
		b.WriteByte(tagImg)
		b.WriteString(img)
	}
	return b.String()
}

// Parse 解包持久化字符串。遇到未知标签或空字段返回 false。
func Parse(s string) (Parts, bool) {
	fields := strings.Split(s, Sep)
	p := Parts{Content: fields[0]}
	for _, f := range fields[1:] {
		if f == "" {
			return Parts{}, false
		}
		switch f[0] {
		case tagMarker:
			p.Marker = f[1:]
		case tagImg:
			p.Img = f[1:]
		default:
			return Parts{}, false
		}
	}
	return p, true
}

// Remake 解包已存储的内容后重新打包：非空的 newContent/newImg 覆盖原值，
// marker 总是替换原有标记。用于编辑时保留原图片、删除时保留原文。
func Remake(stored, marker, newContent, newImg string) (string, bool) {
	p, ok := Parse(stored)
	if !ok {
		return "", false
	}
	content := p.Content
	if newContent != "" {
		content = newContent
	}
	img := p.Img
	if newImg != "" {
		img = newImg
	}
	return Make(content, marker, img), true
}
