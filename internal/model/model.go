package model

import (
	stderrors "errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Model 公共字段；不使用软删除，删除父记录时需要真正删除子记录
type Model struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 哨兵错误不带堆栈，堆栈由调用处的 errors.Wrap 记录
var (
	// ErrInvalid 字段校验失败
	ErrInvalid = stderrors.New("invalid record")
	// ErrMissingReference 外键指向的记录不存在
	ErrMissingReference = stderrors.New("referenced record does not exist")
)

var validate = validator.New()

// Validate 按 validate tag 校验记录，失败时返回包装了 ErrInvalid 的错误
func Validate(record any) error {
	if err := validate.Struct(record); err != nil {
		return errors.Wrapf(ErrInvalid, "%T: %s", record, err)
	}
	return nil
}
