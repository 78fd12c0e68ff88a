// Package model はドメインモデルを定義する。
package model

import "time"

// User はサービス利用ユーザーを表す。
// タイムスタンプはUTCマイクロ秒精度で保持し、DBに保存した値と往復で一致させる。
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateUserInput はユーザー作成の入力を表す。EmailとNameはどちらも必須。
type CreateUserInput struct {
	Email string
	Name  string
}

// UpdateUserInput はユーザー部分更新の入力を表す。
// nilのフィールドは「変更しない」を意味し、空文字列への更新と区別する。
type UpdateUserInput struct {
	Email *string
	Name  *string
}
