// Package pursuitpb holds the wire messages of the pursuit simulator,
// generated from pursuit.proto.
package pursuitpb

//go:generate protoc --go_out=paths=source_relative:. pursuit.proto
