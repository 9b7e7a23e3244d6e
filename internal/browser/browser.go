// Package browser は既定ブラウザの起動を担う
//
// # 責務
// - サーバーURLを既定ブラウザで開く
// - 起動失敗時はエラーを返すだけで、呼び出し側の処理を妨げない
//
// # 仕様
// - ブラウザ起動はベストエフォート（失敗してもサーバーは配信を続ける）
// - 開けるのはhttp/httpsのURLのみ
package browser

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
)

// Open はURLを既定ブラウザで開く
func Open(rawURL string) error {
	if err := validateURL(rawURL); err != nil {
		return err
	}
	return browser.OpenURL(rawURL)
}

// validateURL はブラウザに渡すURLを検証する
func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("無効なURL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("サポートされていないスキーム: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("ホストが指定されていません: %q", rawURL)
	}
	return nil
}
