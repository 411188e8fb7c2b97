// Package kernel contains shared value objects used across the order domain:
// UUID identifiers and Money amounts. Value objects in this package are
// immutable, validated at construction, and safe for concurrent use.
package kernel
