package middleware

import (
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lumohq/lumo-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateSessionToken(token string) (userID, institutionID primitive.ObjectID, err error)
}

// Auth resolves the bearer token into the user and institution context
// values. Requests without a token pass through anonymous; institution
// scope is only set when the session carries one.
func Auth(validator tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, institutionID, err := validator.ValidateSessionToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			if !institutionID.IsZero() {
				ctx = ctxutil.WithInstitutionID(ctx, institutionID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
