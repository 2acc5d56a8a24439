package domain_util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"大小写折叠", "The HOBBIT", "the hobbit"},
		{"空白压缩", "  Dune   Messiah  ", "dune messiah"},
		{"全角转半角", "Ｄｕｎｅ", "dune"},
		{"空字符串", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizeTitle(tc.input))
		})
	}
}

func TestNormalizeTitleConcurrent(t *testing.T) {
	// 导入工作池和请求处理会并发调用，折叠结果必须始终一致
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "the hobbit", NormalizeTitle("The HOBBIT"))
				assert.Equal(t, "dune", NormalizeTitle("Ｄｕｎｅ"))
			}
		}()
	}
	wg.Wait()
}

func TestNormalizeFeature(t *testing.T) {
	assert.Equal(t, "fantasy", NormalizeFeature("  Fantasy "))
	assert.Equal(t, "", NormalizeFeature("   "))
}

func TestSortTitle(t *testing.T) {
	assert.Equal(t, "Hobbit", SortTitle("The Hobbit"))
	assert.Equal(t, "Wizard of Earthsea", SortTitle("A Wizard of Earthsea"))
	assert.Equal(t, "Unexpected Party", SortTitle("An Unexpected Party"))
	assert.Equal(t, "Dune", SortTitle("  Dune "))
	// 冠词判定大小写不敏感但保留原文
	assert.Equal(t, "Hobbit", SortTitle("the Hobbit"))
}

func TestPinyinKeys(t *testing.T) {
	keys := PinyinKeys("三体")
	assert.Equal(t, []string{"san", "ti"}, keys)

	// 非汉字字符按原样保留
	mixed := PinyinKeys("三体X")
	assert.Equal(t, []string{"san", "ti", "X"}, mixed)

	assert.Nil(t, PinyinKeys(""))
}
