// Package user はユーザー管理のドメインロジックを提供する。
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/kata/internal/model"
	"github.com/hitoshi/kata/internal/repository"
)

// Service はユーザー管理のサービス層。
// ユーザーのCRUDとemail一意性のビジネスルールを提供する。
type Service struct {
	repo repository.UserRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はNotFoundエラーを返す。
func (s *Service) FindByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, model.NewDatabaseError(fmt.Errorf("ユーザーの取得に失敗しました: %w", err))
	}
	if user == nil {
		return nil, model.NewNotFoundError("user")
	}
	return user, nil
}

// Create は新しいユーザーを作成する。IDとタイムスタンプはサーバー側で生成する。
// emailが既存ユーザーと重複している場合はConflictエラーを返す。
func (s *Service) Create(ctx context.Context, input model.CreateUserInput) (*model.User, error) {
	// 1. email重複の事前チェック
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, model.NewDatabaseError(fmt.Errorf("emailの重複確認に失敗しました: %w", err))
	}
	if existing != nil {
		return nil, model.NewConflictError("email already exists")
	}

	// 2. 作成。タイムスタンプはDB保存後も同値になるようマイクロ秒精度に丸める。
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := &model.User{
		ID:        uuid.New().String(),
		Email:     input.Email,
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// 事前チェック後に別リクエストが同じemailで作成したケース。
		// 一意制約違反を正とし、事前チェックと同じ競合として扱う。
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewConflictError("email already exists")
		}
		return nil, model.NewDatabaseError(fmt.Errorf("ユーザーの作成に失敗しました: %w", err))
	}

	slog.Info("user created",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// Update はユーザーを部分更新する。
// 指定のあったフィールドのみを書き換え、updated_atを更新する。
// ユーザーが存在しない場合はNotFound、emailが他ユーザーと重複する場合はConflictエラーを返す。
func (s *Service) Update(ctx context.Context, id string, input model.UpdateUserInput) (*model.User, error) {
	// 1. 対象ユーザーの存在確認
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, model.NewDatabaseError(fmt.Errorf("ユーザーの取得に失敗しました: %w", err))
	}
	if user == nil {
		return nil, model.NewNotFoundError("user")
	}

	// 2. email変更時は他ユーザーとの重複を確認（自分自身への再設定は競合にしない）
	if input.Email != nil {
		existing, err := s.repo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, model.NewDatabaseError(fmt.Errorf("emailの重複確認に失敗しました: %w", err))
		}
		if existing != nil && existing.ID != user.ID {
			return nil, model.NewConflictError("email already exists")
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	user.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	// 3. 保存
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewConflictError("email already exists")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, model.NewNotFoundError("user")
		}
		return nil, model.NewDatabaseError(fmt.Errorf("ユーザーの更新に失敗しました: %w", err))
	}

	return user, nil
}

// Delete は指定IDのユーザーを削除する。削除対象の行がない場合はNotFoundエラーを返す。
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.NewNotFoundError("user")
		}
		return model.NewDatabaseError(fmt.Errorf("ユーザーの削除に失敗しました: %w", err))
	}

	slog.Info("user deleted",
		slog.String("user_id", id),
	)

	return nil
}
