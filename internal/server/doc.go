// Package server implements the HTTP front end of the avatar API.
//
// # Endpoints
//
//   - GET /                          landing page
//   - GET /cape/{textureId}[/{width}] cape avatar, width defaults to 80
//   - GET /face/{textureId}[/{size}]  face avatar, size defaults to 64
//   - GET /healthz                   liveness probe
//   - GET /metrics                   Prometheus metrics
//
// A trailing ".png" is stripped from textureId. The cape endpoint accepts a
// "back" query flag and the face endpoint a "nolayers" query flag; both are
// detected by presence, their values are ignored.
//
// # Responses
//
// Avatars are returned as PNG with status 200. Every failure, whether the
// texture could not be fetched, decoded or cropped, or the size is invalid,
// produces the same response:
//
//	HTTP/1.1 404 Not Found
//	Content-Type: application/json
//
//	{"error":true}
//
// The underlying cause is only written to the server log, tagged with the
// request id that is also returned in the X-Request-Id header.
//
// # Usage
//
//	fetcher := texture.NewFetcher(texture.DefaultBaseURL)
//	srv := server.New(fetcher, server.WithLogger(logger))
//	http.ListenAndServe(":8080", srv.Handler())
package server
