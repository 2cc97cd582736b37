package session_di

import (
	"net/http"

	"github.com/lintang-b-s/foodmap-search/pkg/di/config"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const sessionMaxAge = 7 * 24 * 60 * 60

func New(cfg *config.Config, log *zap.Logger) sessions.Store {
	key := []byte(cfg.SessionSecret)
	if len(key) == 0 {
		log.Warn("SESSION_SECRET is not set, stored locations will not survive a restart")
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}
