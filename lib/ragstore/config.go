package ragstore

import (
	"database/sql"
	"fmt"
)

// Config selects the database backing the store: a remote libsql url
// (with optional auth token) or a local sqlite file.
type Config struct {
	File      string `json:"file"`
	Url       string `json:"url"`
	AuthToken string `json:"auth_token"`
}

func (config Config) OpenDB() (*sql.DB, error) {
	if config.Url != "" {
		dsn := config.Url
		if config.AuthToken != "" {
			dsn = fmt.Sprintf("%s?authToken=%s", config.Url, config.AuthToken)
		}
		return sql.Open("libsql", dsn)
	}
	if config.File == "" {
		return nil, fmt.Errorf("store config needs either a url or a file")
	}
	return sql.Open("sqlite", config.File)
}
