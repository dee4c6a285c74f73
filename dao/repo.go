package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各表 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// conn 返回当前应使用的数据库句柄
// 如果上层通过 TxManager 开启了事务，则复用 context 里携带的事务句柄，
// 这样多个 DAO 的写操作可以落在同一个事务里
func (r Repo[T]) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.Db.WithContext(ctx)
}

// IsExist 判断满足条件的记录是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var model T
	var count int64
	err := r.conn(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByWhere 按条件查询单条记录，不存在返回 nil
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.conn(ctx).Where(where, args...).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 插入记录
func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.conn(ctx).Create(item).Error
}

type txKey struct{}

// TxManager 事务管理器
// 通过 context 传递事务句柄，service 层用 Transact 把
// 「关系行变更 + 计数增减」包进同一个事务
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
