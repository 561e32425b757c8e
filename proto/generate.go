// Package proto carries the wire definitions for the extractor
// service. The generated Go stubs live under gen/proto and are not
// checked in; run go generate with protoc, protoc-gen-go and
// protoc-gen-go-grpc on PATH.
package proto

//go:generate protoc --go_out=../.. --go_opt=module=github.com/kyo-hirano/receipt-fields --go-grpc_out=../.. --go-grpc_opt=module=github.com/kyo-hirano/receipt-fields receiptfields/v1/extractor.proto
