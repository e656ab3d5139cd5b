// Package sanitize 清理用户评论：去掉全部 HTML 再把网址与邮箱转成链接。
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"mvdan.cc/xurls/v2"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	linkPattern  = xurls.Relaxed()
)

// Clean 去掉全部标签，文本做 HTML 转义
func Clean(raw string) string {
	return strictPolicy.Sanitize(raw)
}

// AutoLink 把已转义文本中的网址与邮箱包成 <a> 标签
func AutoLink(escaped string) string {
	return linkPattern.ReplaceAllStringFunc(escaped, func(match string) string {
		href := match
		switch {
		case strings.Contains(match, "://"):
		case strings.HasPrefix(match, "mailto:"):
		case strings.Contains(match, "@") && !strings.Contains(match, "/"):
			href = "mailto:" + match
		default:
			href = "http://" + match
		}
		return `<a href="` + href + `">` + match + `</a>`
	})
}

// Comment 评论入库前的完整处理
func Comment(raw string) string {
	return AutoLink(strings.TrimSpace(Clean(raw)))
}
