// Package middleware groups the HTTP middleware used by the fabric-index
// server.
//
// Subpackages:
//   - rayid: assigns a unique request identifier (RayID) to every request so
//     logs and responses can be correlated.
//   - auth: optional API-key protection for all routes.
package middleware
