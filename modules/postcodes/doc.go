// Package postcodes exposes postcode validation over HTTP.
//
// Handler serves single, outward-only and batch checks under a chi router;
// Router wires it together with request ids, health probes and a metrics
// endpoint. An invalid postcode is reported as a result with "valid": false
// and status 200. Malformed batch bodies get 400; empty or oversized lists
// get 422.
package postcodes
