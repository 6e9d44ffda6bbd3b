// Package rpc defines the roster.v1.Students gRPC service.
//
// The service is described by hand instead of generated from a .proto file:
// every message is a protobuf well-known type, so no generated message code
// is needed. Students travel as structpb.Struct with the JSON column names
// (id, first_name, last_name, roll_no, email, department, created_at), lists
// as structpb.ListValue of such structs, and delete ids as Int64Value.
//
//	Ping   (Empty)      -> StringValue "OK"  // open, used for connectivity checks
//	List   (Empty)      -> ListValue          // newest first
//	Insert (Struct)     -> Struct             // fields in, stored student out
//	Update (Struct)     -> Empty              // fields plus "id"
//	Delete (Int64Value) -> Empty              // absent id is not an error
package rpc
