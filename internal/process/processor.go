// Package process は入力ファイルの一括変換処理を提供する。
package process

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format は変換結果の出力フォーマットを表す。
type Format string

const (
	// FormatJSON はJSON形式の出力。
	FormatJSON Format = "json"
	// FormatYAML はYAML形式の出力。
	FormatYAML Format = "yaml"
	// FormatText はプレーンテキスト形式の出力。
	FormatText Format = "text"
)

// ParseFormat はフォーマット文字列をFormatへ変換する。
// 未知の値はエラーを返す。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml":
		return FormatYAML, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("不明な出力フォーマットです: %s", s)
	}
}

// extension はフォーマットに対応する出力ファイルの拡張子を返す。
func (f Format) extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatText:
		return "txt"
	default:
		return "json"
	}
}

// Processor は入力ファイル群を変換して出力ディレクトリへ書き出す。
type Processor struct {
	outputDir string
	format    Format
}

// NewProcessor はProcessorの新しいインスタンスを生成する。
func NewProcessor(outputDir string, format Format) *Processor {
	return &Processor{
		outputDir: outputDir,
		format:    format,
	}
}

// Run は入力ファイル群を順に処理する。
// 存在しないファイルは警告を出してスキップし、読み書きの失敗は即座にエラーを返す。
func (p *Processor) Run(files []string) error {
	if len(files) == 0 {
		return fmt.Errorf("入力ファイルが指定されていません")
	}

	slog.Info("processing files", slog.Int("count", len(files)))

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return fmt.Errorf("出力ディレクトリの作成に失敗しました: %w", err)
	}

	for _, file := range files {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			slog.Warn("file not found", slog.String("path", file))
			continue
		}

		if err := p.processFile(file); err != nil {
			return err
		}
	}

	slog.Info("processing completed")
	return nil
}

// processFile は1ファイルを読み込み、変換結果を出力ディレクトリへ書き出す。
func (p *Processor) processFile(input string) error {
	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("ファイルの読み込みに失敗しました: %s: %w", input, err)
	}

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if stem == "" {
		stem = "output"
	}
	outputPath := filepath.Join(p.outputDir, stem+"."+p.format.extension())

	// 変換処理本体。現状は大文字化のみのプレースホルダー。
	processed := strings.ToUpper(string(content))

	if err := os.WriteFile(outputPath, []byte(processed), 0o644); err != nil {
		return fmt.Errorf("ファイルの書き込みに失敗しました: %s: %w", outputPath, err)
	}

	slog.Info("file processed",
		slog.String("input", input),
		slog.String("output", outputPath),
	)

	return nil
}
