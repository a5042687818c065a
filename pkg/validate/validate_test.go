package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	errs := Collect(Field("username", "").Required())
	assert.Len(t, errs, 1)
	assert.Equal(t, "username", errs[0].Field)

	errs = Collect(Field("username", "alice").Required())
	assert.Empty(t, errs)
}

func TestRequired_NilPointer(t *testing.T) {
	var s *string
	errs := Collect(Field("username", s).Required())
	assert.Len(t, errs, 1)
}

func TestLength(t *testing.T) {
	assert.NotEmpty(t, Collect(Field("username", "ab").Length(3, 50)))
	assert.Empty(t, Collect(Field("username", "abc").Length(3, 50)))
	assert.Empty(t, Collect(Field("username", "abcde").Length(3, 5)))
	assert.NotEmpty(t, Collect(Field("username", "abcdef").Length(3, 5)))
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	// 多字节字符按字符数计
	assert.NotEmpty(t, Collect(Field("username", "你好").Length(3, 50)))
	assert.Empty(t, Collect(Field("username", "你好吗").Length(3, 50)))
	assert.Empty(t, Collect(Field("name", "你好吗").MaxLen(3)))
	assert.NotEmpty(t, Collect(Field("name", "你好吗啊").MaxLen(3)))
	assert.Empty(t, Collect(Field("password", "密码密码密码密码").MinLen(8)))
}

func TestMinLen(t *testing.T) {
	assert.NotEmpty(t, Collect(Field("password", "short").MinLen(8)))
	assert.Empty(t, Collect(Field("password", "longenough").MinLen(8)))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, Collect(Field("email", "a@b.co").Email()))
	assert.NotEmpty(t, Collect(Field("email", "not-an-email").Email()))
	assert.NotEmpty(t, Collect(Field("email", "a b@c.co").Email()))
}

func TestPhone(t *testing.T) {
	assert.Empty(t, Collect(Field("phone", "+1 555 0100").Phone()))
	assert.Empty(t, Collect(Field("phone", "13800138000").Phone()))
	assert.NotEmpty(t, Collect(Field("phone", "abc").Phone()))
	assert.NotEmpty(t, Collect(Field("phone", "12").Phone()))
}

func TestInteger(t *testing.T) {
	// JSON数字解析为float64，整值可通过
	assert.Empty(t, Collect(Field("authorId", float64(3)).Integer()))
	assert.NotEmpty(t, Collect(Field("authorId", float64(3.5)).Integer()))
	assert.Empty(t, Collect(Field("authorId", "42").Integer()))
	assert.NotEmpty(t, Collect(Field("authorId", "42x").Integer()))
	assert.Empty(t, Collect(Field("authorId", uint(7)).Integer()))
}

func TestPositive(t *testing.T) {
	assert.NotEmpty(t, Collect(Field("id", uint(0)).Positive()))
	assert.Empty(t, Collect(Field("id", uint(1)).Positive()))
}

func TestBoolean(t *testing.T) {
	assert.Empty(t, Collect(Field("published", true).Boolean()))
	assert.Empty(t, Collect(Field("published", "true").Boolean()))
	assert.NotEmpty(t, Collect(Field("published", "yes").Boolean()))
	assert.NotEmpty(t, Collect(Field("published", float64(1)).Boolean()))
}

func TestOptional_SkipsWhenAbsent(t *testing.T) {
	var s *string
	errs := Collect(Field("username", s).Optional().Length(3, 50))
	assert.Empty(t, errs)

	// 给了值则正常校验
	v := "ab"
	errs = Collect(Field("username", &v).Optional().Length(3, 50))
	assert.Len(t, errs, 1)
}

func TestCollect_AllFieldsNoShortCircuit(t *testing.T) {
	errs := Collect(
		Field("username", "ab").Required().Length(3, 50),
		Field("password", "short").Required().MinLen(8),
		Field("email", "bad").Email(),
	)
	// 每个失败字段都要出现，顺序与声明一致
	assert.Len(t, errs, 3)
	assert.Equal(t, "username", errs[0].Field)
	assert.Equal(t, "password", errs[1].Field)
	assert.Equal(t, "email", errs[2].Field)
}

func TestCollect_FirstFailurePerField(t *testing.T) {
	// 同一字段多条规则失败，只报第一条
	errs := Collect(Field("email", "").Required().Email())
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "required")
}
