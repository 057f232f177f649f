// Package proto holds the ShareService gRPC contract generated from
// share.proto. The HTTP API serves the same messages as protojson.
package proto

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/share.proto
