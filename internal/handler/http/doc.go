// Package http implements the REST transport of the server.
//
// It wires chi routes under /api/v1, decodes requests, maps service and
// storage errors onto status codes and renders {"detail": "..."} error
// bodies. Tracing, access logging, bearer authentication and the admin
// guard are applied as middleware before requests reach the service layer.
package http
