package main

import (
	"context"
	"log"
	"os"

	"haven/internal/config"
	"haven/internal/server"
)

func main() {
	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// アセットのルートディレクトリへ移動する
	// 相対パスの参照が呼び出し元のシェルではなく同梱アセットに解決される
	if err := os.Chdir(cfg.Server.Root); err != nil {
		log.Fatalf("ルートディレクトリへの移動に失敗しました: %v", err)
	}

	// サーバーを作成
	srv := server.New(cfg)

	// コンテキストを作成
	ctx := context.Background()

	// サーバーを起動する（割り込みを受けるまで配信を続ける）
	if err := srv.Start(ctx); err != nil {
		log.Fatalf("サーバーの起動に失敗しました: %v", err)
	}
}
