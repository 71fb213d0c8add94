package config

import (
	"fmt"
	"os"
)

// 検索の実装方式（/products の search パラメータ）
// substring: name/description への ILIKE 部分一致（既定）
// fulltext : Postgresの全文検索（to_tsvector / plainto_tsquery）
const (
	SearchModeSubstring = "substring"
	SearchModeFulltext  = "fulltext"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば最優先のDSN
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート

	JWTSecret string // JWT署名シークレット

	SearchMode string // substring / fulltext

	GoEnv string // dev/prod
	FEURL string // フロントURL（CORSで使う）

	AdminEmail    string // 起動時に作る管理者（任意）
	AdminPassword string
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "watchstore"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		SearchMode: getenv("SEARCH_MODE", SearchModeSubstring),

		GoEnv: getenv("GO_ENV", "dev"),
		FEURL: getenv("FE_URL", "http://localhost:3000"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.SearchMode != SearchModeSubstring && cfg.SearchMode != SearchModeFulltext {
		return Config{}, fmt.Errorf("SEARCH_MODE must be %s or %s", SearchModeSubstring, SearchModeFulltext)
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
