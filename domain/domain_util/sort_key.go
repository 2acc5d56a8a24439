package domain_util

import (
	"github.com/mozillazg/go-pinyin"
)

// PinyinKeys 生成中文书名/作者名的拼音排序键，非汉字字符按原样保留
func PinyinKeys(s string) []string {
	if s == "" {
		return nil
	}

	args := pinyin.NewArgs()
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}

	result := pinyin.Pinyin(s, args)
	keys := make([]string, 0, len(result))
	for _, parts := range result {
		if len(parts) > 0 && parts[0] != "" {
			keys = append(keys, parts[0])
		}
	}
	return keys
}
