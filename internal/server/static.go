package server

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// fallbackContentType は拡張子が未知の場合に使う汎用バイナリタイプ
const fallbackContentType = "application/octet-stream"

// cacheControl はすべてのレスポンスにキャッシュ制御ヘッダーを付与するミドルウェア
// クライアントに毎回再検証させることで、更新されたアセットが確実に反映される
func cacheControl() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=0")
		c.Next()
	}
}

// handleStatic は静的ファイルを配信する
// パス解決・index.htmlの補完・ルート外への脱出防止はhttp.FileServerに委譲する
func (s *Server) handleStatic(c *gin.Context) {
	upath := c.Request.URL.Path

	// コンテンツタイプを先に確定させておくと、配信側の推測より優先される
	ctype := s.contentTypeFor(upath)
	if ctype == "" && s.isRegularFile(upath) {
		// 拡張子を持たない通常ファイルにも汎用バイナリタイプを付ける
		// ディレクトリへのリダイレクトや一覧には付けない
		ctype = fallbackContentType
	}
	if ctype != "" {
		c.Header("Content-Type", ctype)
	}

	c.FileFromFS(upath, http.Dir(s.config.Server.Root))
}

// contentTypeFor はリクエストパスからコンテンツタイプを解決する
// 上書きテーブル → プラットフォームのmimeテーブル → 汎用バイナリタイプの順で引く
// 拡張子を持たないパスは空文字を返し、判定を呼び出し側に任せる
func (s *Server) contentTypeFor(upath string) string {
	name := upath
	if strings.HasSuffix(name, "/") {
		// ディレクトリはindex.htmlとして解決される
		name += "index.html"
	}

	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return ""
	}

	if ctype, ok := s.config.MIME.Overrides[ext]; ok {
		return ctype
	}
	if ctype := mime.TypeByExtension(ext); ctype != "" {
		return ctype
	}
	return fallbackContentType
}

// isRegularFile はリクエストパスが配信ルート内の通常ファイルを指すか判定する
// http.FileServerと同じくパスを正規化してから引くため、ルートの外は参照しない
func (s *Server) isRegularFile(upath string) bool {
	if !strings.HasPrefix(upath, "/") {
		upath = "/" + upath
	}
	name := filepath.Join(s.config.Server.Root, filepath.FromSlash(path.Clean(upath)))

	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}
