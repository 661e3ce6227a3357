package commands

import (
	"context"
	"database/sql"

	"coursecentral-backend/lib/configutil"
	"coursecentral-backend/lib/ragstore"
	"coursecentral-backend/lib/serviceutil"
)

type RedditConfig struct {
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Subreddit    string `json:"subreddit"`
	PostLimit    int    `json:"post_limit"`
}

type RmpConfig struct {
	PagesDir string `json:"pages_dir"`
	BaseUrl  string `json:"base_url"`
}

type EmailConfig struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
	Server       string `json:"server"`
	Port         int    `json:"port"`
	ReportTo     string `json:"report_to"`
}

type Config struct {
	Store  ragstore.Config `json:"store"`
	Reddit RedditConfig    `json:"reddit"`
	Rmp    RmpConfig       `json:"rmp"`
	Notify EmailConfig     `json:"notify"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func openStore(ctx context.Context, cfg Config) (ragstore.Store, *sql.DB) {
	database, err := cfg.Store.OpenDB()
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	store := ragstore.NewStore(database)
	err = store.InitSchema(ctx)
	if err != nil {
		serviceutil.Fatal("failed to initialize schema", err)
	}
	return store, database
}
