// Package main provides localization for the idemfs CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Configuration": "設定",
		"Logging":       "ログ",

		// Root command
		"Idempotent filesystem operations": "冪等なファイルシステム操作",
		"idemfs creates and removes files and directories, treating an already satisfied request as success.": "idemfsはファイルとディレクトリを作成・削除し、既に満たされている要求は成功として扱います。",

		// Global flags
		"Path to a YAML configuration file":    "YAML設定ファイルのパス",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Log format (text, json)":              "ログ形式（text, json）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Commands
		"Create directories": "ディレクトリを作成",
		"Create empty files, leaving existing files untouched":           "空のファイルを作成（既存のファイルは変更しない）",
		"Remove directories, skipping missing or populated ones":         "ディレクトリを削除（存在しないもの・空でないものはスキップ）",
		"Remove files or symbolic links":                                 "ファイルまたはシンボリックリンクを削除",
		"Remove files, symbolic links or whole directories":              "ファイル、シンボリックリンク、またはディレクトリ全体を削除",
		"Print whether a path is a directory, following symbolic links": "パスがディレクトリかどうかを表示（シンボリックリンクを辿る）",
		"Apply a YAML or TOML manifest of steps":                         "YAMLまたはTOMLのマニフェストを適用",

		// Command flags
		"Create missing parent directories":     "不足している親ディレクトリを作成",
		"Remove directories and their contents": "ディレクトリとその中身を削除",
		"Write a summary to this file (Markdown, or YAML for .yaml/.yml)": "サマリーをこのファイルに出力（Markdown、.yaml/.ymlならYAML）",
		"Keep going after a failed step":        "ステップが失敗しても続行",

		// Argument errors
		"at least one path is required":    "パスを1つ以上指定してください",
		"exactly one path is required":     "パスを1つだけ指定してください",
		"exactly one manifest is required": "マニフェストを1つだけ指定してください",

		// Summary content
		"Apply Summary":     "適用サマリー",
		"Generated":         "生成日時",
		"Manifest":          "マニフェスト",
		"Results":           "実行結果",
		"Steps":             "ステップ",
		"Item":              "項目",
		"Value":             "値",
		"Source":            "ソース",
		"Root":              "ルート",
		"Continue on error": "エラー時も続行",
		"Succeeded":         "成功",
		"Failed":            "失敗",
		"Total Duration":    "合計時間",
		"Operation":         "操作",
		"Path":              "パス",
		"Result":            "結果",
		"Time":              "時間",
		"ok":                "成功",
		"failed":            "失敗",
		"None":              "なし",
		"Yes":               "はい",
		"No":                "いいえ",
	})
}
