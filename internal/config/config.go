package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultHost はサーバーがリッスンするループバックアドレス
const DefaultHost = "127.0.0.1"

// DefaultPort はサーバーがリッスンする固定ポート番号
const DefaultPort = 8765

// Config はアプリケーション全体の設定を保持する構造体
// 起動時に一度だけ構築され、以降は読み取り専用として扱う
type Config struct {
	Server ServerConfig
	MIME   MIMEConfig
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト（ループバック固定）
	Port int    // リッスンするポート番号
	Root string // 配信するルートディレクトリ（実行ファイルのあるディレクトリ）

	// タイムアウト設定
	ReadTimeout  time.Duration // 読み込みタイムアウト
	WriteTimeout time.Duration // 書き込みタイムアウト
}

// MIMEConfig は拡張子からコンテンツタイプへの上書きテーブル
// プロセス共通のmimeテーブルを書き換えるのではなく、
// 明示的な値としてリクエストハンドラに渡す
type MIMEConfig struct {
	Overrides map[string]string
}

// defaultOverrides は既定の上書きエントリを返す
func defaultOverrides() map[string]string {
	return map[string]string{
		".js":          "application/javascript",
		".mjs":         "application/javascript",
		".webmanifest": "application/manifest+json",
	}
}

// Load は設定を読み込む
// ホスト・ポート・ルートは固定値で、フラグや環境変数による上書きは行わない
func Load() (*Config, error) {
	// 実行ファイルのあるディレクトリを配信ルートとして解決する
	root, err := executableDir()
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの解決に失敗: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			Root:         root,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // 大きなアセット配信のためタイムアウト無効化
		},
		MIME: MIMEConfig{
			Overrides: defaultOverrides(),
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.Root == "" {
		return fmt.Errorf("ルートディレクトリが設定されていません")
	}

	// MIME上書きテーブルの検証
	for ext, ctype := range c.MIME.Overrides {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("無効な拡張子: %q", ext)
		}
		if ctype == "" {
			return fmt.Errorf("拡張子 %q のコンテンツタイプが空です", ext)
		}
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// BaseURL はブラウザで開くサーバーのURLを返す
func (c *Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Server.Host, c.Server.Port)
}

// executableDir は実行ファイルを含むディレクトリを返す
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
