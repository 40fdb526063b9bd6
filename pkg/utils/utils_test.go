package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUniqID(t *testing.T) {
	SetupIDWorker(1)

	a := GenUniqIDStr()
	b := GenUniqIDStr()
	assert.NotEqual(t, a, b)
	t.Log(a, len(a))
}

func TestRandomStr(t *testing.T) {
	assert.Len(t, RandomStr(32), 32)
}

func Test_ParseAcceptLanguage(t *testing.T) {
	res := ParseAcceptLanguage("zh-CN,zh;q=0.9,en-US;q=0.8,en;q=0.7")
	t.Log(res)
	assert.NotEmpty(t, res)
	assert.Equal(t, "zh-CN", res[0].Tag)
}
