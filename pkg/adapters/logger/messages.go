package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Wrapper (debug)
		"Permitting %s for %s %s": "%[2]s %[3]s: %[1]s を許容しました",

		// Manifest runner (info)
		"Applying manifest %s (%d steps)": "マニフェスト %s を適用中 (%d ステップ)",
		"Step %d/%d: %s %s":               "ステップ %d/%d: %s %s",
		"Applied %d steps in %d ms":       "%d ステップを %d ms で適用しました",
		"Summary saved to %s":             "サマリーを %s に保存しました",

		// Warnings
		"Continuing after failure: %s": "失敗後も続行します: %s",
		"Interrupted, stopping...":     "中断されました。停止中...",

		// Errors
		"Step %d failed: %s %s: %s":   "ステップ %d が失敗しました: %s %s: %s",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",
	})
}
