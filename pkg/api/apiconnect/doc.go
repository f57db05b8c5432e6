// Package apiconnect holds the connect handler and client constructors for
// the bill tracker services, laid out the way protoc-gen-connect-go lays out
// generated code. Every handler and client is configured with
// api.JSONCodec, so messages are plain Go structs.
package apiconnect
