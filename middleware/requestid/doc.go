// Package requestid provides middleware for generating and managing
// unique request IDs for distributed tracing and request correlation.
package requestid
