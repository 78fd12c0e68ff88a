// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/kata/internal/model"
)

// ErrDuplicateEmail はemailの一意制約違反を表す。
// 事前チェックをすり抜けた同時作成も、このエラーで競合として検出できる。
var ErrDuplicateEmail = errors.New("duplicate email")

// ErrNotFound は更新・削除の対象行が存在しないことを表す。
var ErrNotFound = errors.New("user not found")

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByEmail は指定emailのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成する。emailが重複している場合はErrDuplicateEmailを返す。
	Create(ctx context.Context, user *model.User) error

	// Update はユーザーのemail・name・updated_atを上書き更新する。
	// 対象行が存在しない場合はErrNotFound、emailが重複している場合はErrDuplicateEmailを返す。
	Update(ctx context.Context, user *model.User) error

	// Delete は指定IDのユーザーを削除する。対象行が存在しない場合はErrNotFoundを返す。
	Delete(ctx context.Context, id string) error
}
