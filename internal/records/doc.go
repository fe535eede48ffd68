// Package records provides an HTTP client for the Record Service API.
//
// # Overview
//
// The Record Service stores opaque text records, each identified by an id the
// service assigns. Stash only needs three calls:
//
//	GET    /api/getdata          list every record as [{"id": ..., "data": "..."}]
//	POST   /api/storedata        create a record from {"data": "..."}
//	DELETE /api/deletedata/{id}  delete a record
//
// # Client Usage
//
//	client, err := records.NewClient("http://127.0.0.1:5000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	list, err := client.List(ctx)
//	if err != nil {
//		log.Printf("list failed: %v", err)
//	}
//
// # Identifiers
//
// Services disagree on whether ids are numbers or strings. RecordID decodes
// both and keeps the literal text, so a delete always echoes back exactly what
// the last list returned.
//
// # Errors
//
// Every failure (transport error, status >= 400, undecodable list body) is
// returned as a wrapped error. Callers are not expected to distinguish them.
// Each request carries a fresh X-Request-ID which is repeated in the error text
// so client and service logs can be correlated.
//
// # Testing
//
// The recordstest subpackage runs an in-memory Record Service on httptest with
// switchable failures, for use by any package that talks to the service.
package records
