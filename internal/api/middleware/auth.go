package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/playden/GPR-BookingService/internal/api/handlers"
	"github.com/playden/GPR-BookingService/internal/domain"
)

const (
	// HeaderUserID заголовок с ID аутентифицированного пользователя,
	// проставляется API-шлюзом
	HeaderUserID = "X-User-ID"

	// HeaderUserRole заголовок с ролью пользователя ("user" или "admin")
	HeaderUserRole = "X-User-Role"

	roleAdmin = "admin"

	msgMissingUserID = "требуется аутентификация"
	msgInvalidUserID = "некорректный идентификатор пользователя"
)

type actorCtxKey struct{}

// Auth извлекает пользователя из заголовков шлюза и кладет domain.Actor
// в контекст запроса. Запросы без X-User-ID отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(HeaderUserID)
		if rawID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		actor := domain.Actor{
			UserID:  userID,
			IsAdmin: r.Header.Get(HeaderUserRole) == roleAdmin,
		}

		ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext возвращает пользователя, положенного в контекст Auth
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}
