package service

import (
	"errors"

	"gorm.io/gorm"
)

// 业务错误哨兵，handler据此映射HTTP状态码
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("duplicate record")
	ErrHasDependents = errors.New("record has dependent rows")
)

// translate 将GORM统一错误翻译为业务哨兵错误
// 其余错误原样返回，由handler落入500
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
