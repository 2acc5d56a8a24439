package domain_util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

// NormalizeTitle 书名规范化：全角转半角、大小写折叠、去首尾空格、压缩连续空白。
// 标题去重和大小写不敏感匹配都以该结果为准。
// Caser有状态、不可跨goroutine共享，必须每次调用单独构造。
func NormalizeTitle(s string) string {
	s = width.Fold.String(s)
	s = cases.Fold().String(s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeFeature 特征值规范化：小写并去首尾空格
func NormalizeFeature(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SortTitle 排序用书名：去除英文冠词前缀
func SortTitle(title string) string {
	title = strings.TrimSpace(title)
	lower := strings.ToLower(title)
	for _, article := range []string{"the ", "an ", "a "} {
		if strings.HasPrefix(lower, article) {
			return strings.TrimSpace(title[len(article):])
		}
	}
	return title
}
