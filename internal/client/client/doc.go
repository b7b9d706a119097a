// Package client is the notes CLI's connection to the notes server.
//
// # Overview
//
// Client speaks GraphQL over HTTP to the server's /graph endpoint. It keeps
// the access and refresh tokens issued by Login, attaches the access token as
// an "Authorization: Bearer" header on protected operations and, when the
// server answers UNAUTHENTICATED, refreshes the access token once and retries.
//
// # Error Handling
//
// Conditions callers branch on are exposed as sentinel errors matched with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrAlreadyExists.
// Any other GraphQL error is returned as *GraphQLError.
//
// Client is safe for concurrent use.
package client
