// Package server は、ローカル静的ファイルサーバーのライフサイクルを管理します。
//
// このパッケージは、ループバックアドレスへのバインド、静的ファイルの配信、
// 既定ブラウザの起動、グレースフルシャットダウンを担当します。
//
// 責務:
//   - TCPリスナーのバインドとバインド失敗の意味的な分類
//   - 静的ファイル（HTML/CSS/JS等）の配信
//   - MIMEタイプの上書きとキャッシュ制御ヘッダーの付与
//   - 既定ブラウザの起動（ベストエフォート）
//   - 割り込みシグナルによるグレースフルシャットダウン
//
// 仕様:
//   - HTTPフレームワークとしてgin-gonic/ginを使用
//   - パス解決とルート外への脱出防止はhttp.FileServerに委譲
//   - 通常リクエストのアクセスログは出力しない
//   - バインド失敗時はリトライせずエラーを返す
package server
