package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// FieldError 单个字段的校验失败信息
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\-\s]{5,18}[0-9]$`)
)

// F 一个字段的规则集合
// 规则惰性求值：Collect 时按声明顺序执行
// 同一字段取第一条失败规则，不同字段的失败全部收集
type F struct {
	name     string
	raw      interface{}
	optional bool
	rules    []rule
}

type rule struct {
	check   func(v interface{}) bool
	message string
}

// Field 声明一个待校验字段，raw 为解析后的载荷原值
func Field(name string, raw interface{}) *F {
	return &F{name: name, raw: raw}
}

// Optional 字段缺省时跳过后续全部规则
func (f *F) Optional() *F {
	f.optional = true
	return f
}

// Required 必填：字段存在且非空
func (f *F) Required() *F {
	f.rules = append(f.rules, rule{
		check:   func(v interface{}) bool { return present(v) },
		message: fmt.Sprintf("%s is required", f.name),
	})
	return f
}

// Length 字符串长度区间 [min, max]，按字符数而非字节数
func (f *F) Length(min, max int) *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			s, ok := asString(v)
			if !ok {
				return false
			}
			n := utf8.RuneCountInString(s)
			return n >= min && n <= max
		},
		message: fmt.Sprintf("%s must be between %d and %d characters", f.name, min, max),
	})
	return f
}

// MinLen 字符串最小长度
func (f *F) MinLen(min int) *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			s, ok := asString(v)
			return ok && utf8.RuneCountInString(s) >= min
		},
		message: fmt.Sprintf("%s must be at least %d characters", f.name, min),
	})
	return f
}

// MaxLen 字符串最大长度
func (f *F) MaxLen(max int) *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			s, ok := asString(v)
			return ok && utf8.RuneCountInString(s) <= max
		},
		message: fmt.Sprintf("%s must be at most %d characters", f.name, max),
	})
	return f
}

// Email 邮箱格式
func (f *F) Email() *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			s, ok := asString(v)
			return ok && emailPattern.MatchString(s)
		},
		message: fmt.Sprintf("%s must be a valid email address", f.name),
	})
	return f
}

// Phone 电话格式（可带国际前缀，允许分隔符）
func (f *F) Phone() *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			s, ok := asString(v)
			return ok && phonePattern.MatchString(s)
		},
		message: fmt.Sprintf("%s must be a valid phone number", f.name),
	})
	return f
}

// Integer 整数格式（JSON数字须为整值，字符串须可解析为整数）
func (f *F) Integer() *F {
	f.rules = append(f.rules, rule{
		check:   func(v interface{}) bool { return isInteger(v) },
		message: fmt.Sprintf("%s must be an integer", f.name),
	})
	return f
}

// Positive 正整数
func (f *F) Positive() *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			n, ok := asInt64(v)
			return ok && n > 0
		},
		message: fmt.Sprintf("%s must be a positive integer", f.name),
	})
	return f
}

// Boolean 布尔格式
func (f *F) Boolean() *F {
	f.rules = append(f.rules, rule{
		check: func(v interface{}) bool {
			switch t := v.(type) {
			case bool, *bool:
				return true
			case string:
				_, err := strconv.ParseBool(t)
				return err == nil
			default:
				return false
			}
		},
		message: fmt.Sprintf("%s must be a boolean", f.name),
	})
	return f
}

// Collect 按声明顺序评估全部字段，收集所有失败
// 不做请求级短路：某字段失败不影响其余字段的评估
func Collect(fields ...*F) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		// 可选字段缺省时整体跳过
		if f.optional && !present(f.raw) {
			continue
		}
		for _, r := range f.rules {
			if !r.check(f.raw) {
				errs = append(errs, FieldError{Field: f.name, Message: r.message})
				break // 同一字段只取第一条失败
			}
		}
	}
	return errs
}

// present 字段是否存在且非空
func present(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case *string:
		return t != nil && *t != ""
	case *bool:
		return t != nil
	case *uint:
		return t != nil
	case *int:
		return t != nil
	case uint:
		return t != 0
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// asString 取字符串值（支持指针）
func asString(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	default:
		return "", false
	}
}

// asInt64 取整数值（支持JSON数字、指针与数字字符串）
func asInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case *uint:
		if t == nil {
			return 0, false
		}
		return int64(*t), true
	case *int:
		if t == nil {
			return 0, false
		}
		return int64(*t), true
	case float64:
		if t != float64(int64(t)) {
			return 0, false
		}
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func isInteger(v interface{}) bool {
	_, ok := asInt64(v)
	return ok
}
