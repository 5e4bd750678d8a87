package ctxutil

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey string

const (
	userIDKey        ctxKey = "user_id"
	institutionIDKey ctxKey = "institution_id"
	requestIDKey     ctxKey = "request_id"
)

// WithUserID stores the authenticated user ID in the context.
func WithUserID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the authenticated user ID from the context.
// Returns a zero ObjectID and false if the value is missing, zero, or wrong type.
func UserIDFromCtx(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(userIDKey).(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, false
	}
	return id, true
}

// WithInstitutionID stores the session's resolved institution ID in the context.
// This is the tenant-isolation boundary: every institution-scoped operation
// reads the institution ID through InstitutionIDFromCtx and refuses to run
// without it.
func WithInstitutionID(ctx context.Context, id primitive.ObjectID) context.Context {
	return context.WithValue(ctx, institutionIDKey, id)
}

// InstitutionIDFromCtx extracts the session institution ID from the context.
// Returns a zero ObjectID and false if the value is missing, zero, or wrong type.
func InstitutionIDFromCtx(ctx context.Context) (primitive.ObjectID, bool) {
	id, ok := ctx.Value(institutionIDKey).(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
