// Package client contains the client-side plumbing behind the roster stores.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract for the remote students table (see the
//     Client interface): Ping, ListStudents, InsertStudent, UpdateStudent and
//     DeleteStudent.
//  2. A gRPC implementation (see GRPCClient) that manages a connection,
//     attaches the API key to every call, applies a per-request timeout and
//     maps gRPC status codes to the sentinel errors of package common.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the SQLite file and applies the embedded goose migrations.
//
// # Error Handling
//
// Callers match failures with errors.Is against common.ErrStoreUnavailable,
// common.ErrNotFound, common.ErrValidation and common.ErrUnauthorized.
package client
