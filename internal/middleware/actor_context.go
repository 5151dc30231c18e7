package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const actorKey ctxKey = "actor"

// ActorHeader lo manda el frontend con el nombre de quien está usando la app.
const ActorHeader = "X-Actor-Name"

// ActorContext deja en el contexto el nombre que viene en X-Actor-Name.
// No corta el request: si falta, el handler decide (el body puede traerlo).
func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name := strings.TrimSpace(r.Header.Get(ActorHeader)); name != "" {
			ctx := context.WithValue(r.Context(), actorKey, name)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func GetActor(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(actorKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithActor es para tests y para llamadas internas que no pasan por HTTP.
func WithActor(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, actorKey, strings.TrimSpace(name))
}
