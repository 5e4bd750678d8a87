package model

import (
	"fmt"
	"io"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateTime wraps time.Time for GraphQL scalar marshaling.
type DateTime time.Time

func MarshalDateTime(t time.Time) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+t.Format(time.RFC3339)+`"`)
	})
}

func UnmarshalDateTime(v interface{}) (time.Time, error) {
	switch v := v.(type) {
	case string:
		return time.Parse(time.RFC3339, v)
	default:
		return time.Time{}, fmt.Errorf("DateTime must be a string in RFC3339 format")
	}
}

// ObjectID wraps primitive.ObjectID for GraphQL scalar marshaling.
type ObjectID = primitive.ObjectID

// MarshalObjectID marshals an ObjectID to a GraphQL hex string.
func MarshalObjectID(id primitive.ObjectID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		io.WriteString(w, `"`+id.Hex()+`"`)
	})
}

// UnmarshalObjectID unmarshals a GraphQL hex string to an ObjectID.
func UnmarshalObjectID(v interface{}) (primitive.ObjectID, error) {
	switch v := v.(type) {
	case string:
		return primitive.ObjectIDFromHex(v)
	default:
		return primitive.NilObjectID, fmt.Errorf("ObjectID must be a 24-character hex string")
	}
}
