// Package graphql provides the GraphQL transport layer for the Lumo
// portal backend. It defines the schema, resolvers, and error handling for
// the institutional admin dashboard. Scalar types (ObjectID, DateTime) and
// GraphQL types are automatically generated via gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
