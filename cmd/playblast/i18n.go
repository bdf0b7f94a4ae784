// Package main provides localization for the playblast CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Capture viewport animation and encode it as video": "ビューポートのアニメーションをキャプチャして動画にエンコード",

		// Record command
		"Record the demo scene as a playblast": "デモシーンをプレイブラストとして記録",

		// Presets command
		"List the available presets and formats": "利用可能なプリセットとフォーマットを一覧表示",

		// Version command
		"Show version information": "バージョン情報を表示",
		"playblast version %s":     "playblast バージョン %s",

		// Flags
		"Path to a YAML configuration file":                                        "YAML設定ファイルのパス",
		"Output directory ({project} expands to the project root)":                 "出力ディレクトリ（{project}はプロジェクトルートに展開）",
		"Output file name ({scene} expands to the scene name)":                     "出力ファイル名（{scene}はシーン名に展開）",
		"Path to the ffmpeg executable":                                            "ffmpeg実行ファイルのパス",
		"Camera to capture through (default: active viewport camera)":              "キャプチャに使うカメラ（デフォルト: アクティブビューポートのカメラ）",
		"Resolution preset (Render, HD 1080, HD 720, HD 540)":                      "解像度プリセット（Render, HD 1080, HD 720, HD 540）",
		"Explicit output width in pixels":                                          "出力幅（ピクセル）",
		"Explicit output height in pixels":                                         "出力高さ（ピクセル）",
		"Frame range preset (Render, Playback, Animation)":                         "フレーム範囲プリセット（Render, Playback, Animation）",
		"Explicit start frame":                                                     "開始フレーム",
		"Explicit end frame":                                                       "終了フレーム",
		"Visibility preset (Viewport, Geo, Dynamics)":                              "表示プリセット（Viewport, Geo, Dynamics）",
		"Container format (mov, mp4, Image)":                                       "コンテナフォーマット（mov, mp4, Image）",
		"Codec (h264 for video, jpg/png/tif for Image)":                            "コーデック（動画はh264、Imageはjpg/png/tif）",
		"H.264 quality (Very high, High, Medium, Low)":                             "H.264品質（Very high, High, Medium, Low）",
		"H.264 speed preset (veryslow ... ultrafast)":                              "H.264速度プリセット（veryslow ... ultrafast）",
		"Frame compression quality for Image output (1-100)":                       "Image出力のフレーム圧縮品質（1-100）",
		"Frame number padding width":                                               "フレーム番号のゼロ埋め幅",
		"Replace an existing output file":                                          "既存の出力ファイルを置き換える",
		"Hide viewport overlays in the capture":                                    "キャプチャからビューポートオーバーレイを除外",
		"Open the result when finished":                                            "完了後に結果を開く",
		"Path to Chrome executable (falls back to CHROME_PATH env, then system default)": "Chrome実行ファイルのパス（CHROME_PATH環境変数、システムデフォルトの順にフォールバック）",
		"Audio file linked to the timeline":                                        "タイムラインにリンクする音声ファイル",
		"Frame at which the audio starts":                                          "音声が始まるフレーム",
		"Write a frame-grid poster PNG to this path (Image container only)":        "フレームグリッドのポスターPNGをこのパスに書き出し（Imageコンテナのみ）",
		"Log level (debug, info, warn, error)":                                     "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                                                  "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",
		"Failed to persist ffmpeg path: %s": "ffmpegパスの保存に失敗しました: %s",
		"Failed to write contact sheet: %s": "コンタクトシートの書き込みに失敗しました: %s",
		"Contact sheet saved to %s":         "コンタクトシートを %s に保存しました",

		// Presets output
		"Resolution presets:":    "解像度プリセット:",
		"Frame range presets:":   "フレーム範囲プリセット:",
		"Visibility presets:":    "表示プリセット:",
		"Containers and codecs:": "コンテナとコーデック:",
		"H.264 qualities:":       "H.264品質:",
		"H.264 speed presets:":   "H.264速度プリセット:",
		"Show categories:":       "表示カテゴリ:",
	})
}
