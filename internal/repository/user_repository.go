package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（IDが埋まる）
	Create(ctx context.Context, user *model.User) error

	FindByID(ctx context.Context, userID int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	//プロフィール更新（氏名・電話のみ）
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone string) error

	List(ctx context.Context, page int, limit int) ([]model.User, int64, error)
	Delete(ctx context.Context, userID int64) error
}
