// Package utils provides common utility functions for the fabric-index
// application. It includes helper functions for scalar type conversion and
// other shared logic that doesn't fit into domain-specific packages.
package utils
