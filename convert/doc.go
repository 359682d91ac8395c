// Package convert moves matrices between linalg/matrix and gonum's mat package.
//
// Both sides use row-major float64 storage, so conversion is a single copy;
// the result never shares a buffer with its source.
package convert
