package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting render pipeline":        "レンダリングパイプラインを開始します",
		"Rendering %s (%ds clip)...":      "%s をレンダリング中 (%d秒のクリップ)...",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Normalize stage
		"Decoded source image: %dx%d":            "ソース画像をデコードしました: %dx%d",
		"Primary decode (%s) rejected input: %s": "プライマリデコード (%s) が入力を拒否しました: %s",

		// Compose stage
		"Letterboxed source at (%d,%d) %dx%d": "ソースをレターボックス配置: (%d,%d) %dx%d",
		"Caption wrapped into %d lines":       "キャプションを %d 行に折り返しました",
		"Failed to save composed frame: %s":   "合成フレームの保存に失敗しました: %s",
		"Failed to save wrapped lines: %s":    "折り返し行の保存に失敗しました: %s",

		// Encode stage
		"Invoking engine for %ds (%d frames, audio=%v)": "エンジンを起動中: %d秒 (%d フレーム, 音声=%v)",
		"Encoded %d/%d frames":                          "%d/%d フレームをエンコードしました",
		"Muxed audio track into %s":                     "音声トラックを %s に多重化しました",
		"Video encoded: %d bytes":                       "動画エンコード完了: %d バイト",
		"Output probe failed: %s":                       "出力のプローブに失敗しました: %s",
		"Failed to save encoder args: %s":               "エンコーダ引数の保存に失敗しました: %s",

		// Cleanup warnings
		"Failed to delete artifact %s: %s":      "アーティファクト %s の削除に失敗しました: %s",
		"Failed to remove job directory %s: %s": "ジョブディレクトリ %s の削除に失敗しました: %s",
		"Illegal job state transition %s -> %s": "不正なジョブ状態遷移です: %s -> %s",

		// Errors
		"Failed to read input image: %s": "入力画像の読み込みに失敗しました: %s",
		"Failed to read audio: %s":       "音声の読み込みに失敗しました: %s",
		"Failed to encode video: %s":     "動画のエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
	})
}
