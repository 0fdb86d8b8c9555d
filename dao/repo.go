package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各表 DAO 内嵌后获得 Db 句柄与基础能力
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var model T
	var count int64
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count > 0, err
}

// Transaction 事务
func (r *Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
