package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"haven/internal/browser"
	"haven/internal/config"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server

	mu       sync.RWMutex
	listener net.Listener

	// openBrowser は既定ブラウザを開く関数
	// テストで失敗経路を再現できるよう差し替え可能にしておく
	openBrowser func(url string) error
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	// リリースモードで動かす（デバッグ出力を抑止）
	gin.SetMode(gin.ReleaseMode)

	// ロガーなしのエンジンを作成する（通常リクエストはログ出力しない）
	// パニック時もスタックトレースをコンソールに出さずに回復する
	engine := gin.New()
	engine.Use(gin.RecoveryWithWriter(io.Discard))

	s := &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		openBrowser: browser.Open,
	}

	s.setupRoutes()

	return s
}

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	// すべてのレスポンスにキャッシュ制御ヘッダーを付与する
	s.engine.Use(cacheControl())

	// ヘルスチェックエンドポイント
	s.engine.GET("/health", s.handleHealth)

	// ステータス確認エンドポイント
	s.engine.GET("/api/status", s.handleStatus)

	// それ以外のパスはすべて静的ファイルとして配信する
	s.engine.NoRoute(s.handleStatic)
}

// Addr はバインド済みリスナーのアドレスを返す
// バインド前はnilを返す
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// setListener はバインド済みリスナーを記録する
func (s *Server) setListener(ln net.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = ln
}

// Start はサーバーを起動する
// リスナーのバインドに成功すると、割り込みシグナルか
// コンテキストのキャンセルを受けるまで配信を続ける
func (s *Server) Start(ctx context.Context) error {
	// リスナーをバインドする
	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return classifyBindError(err, s.config.Server.Port)
	}
	s.setListener(ln)
	// シャットダウン・エラーのどの経路でも確実にソケットを解放する
	defer ln.Close()

	// 起動バナー
	log.Println("Aurorae Haven オフラインサーバー")
	log.Printf("配信URL: %s", s.config.BaseURL())
	log.Printf("配信ディレクトリ: %s", s.config.Server.Root)
	log.Println("停止するには Ctrl+C を押してください")

	// 既定ブラウザを開く
	// 失敗してもサーバーは配信を続ける（ベストエフォート）
	if err := s.openBrowser(s.config.BaseURL()); err != nil {
		log.Printf("ブラウザの自動起動に失敗しました: %v", err)
		log.Printf("お使いのブラウザで %s を開いてください", s.config.BaseURL())
	} else {
		log.Println("既定ブラウザでページを開いています...")
	}

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの配信に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}

// classifyBindError はバインド失敗を意味で分類してユーザー向けのエラーへ変換する
// OSごとに異なるerrno値を直接比較せず、errors.Isで意味的に判定する
func classifyBindError(err error, port int) error {
	if errors.Is(err, syscall.EADDRINUSE) {
		return fmt.Errorf("ポート %d は既に使用されています。他のアプリケーションを終了するか、ポートが空くのを待ってください", port)
	}
	return fmt.Errorf("リスナーのバインドに失敗: %w", err)
}
