// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header. Disabled when no key
//     is configured, which suits a single operator on localhost.
//   - rayid: assigns every request a ray id, stored in the context locals and
//     echoed in the X-Ray-ID response header for tracing.
//
// rayid must be registered first so every later log line can carry the id.
package middleware
