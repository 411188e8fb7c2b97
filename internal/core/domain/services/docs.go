// Package services contains stateless domain services that implement
// business logic spanning multiple aggregates. ReportBuilder turns a
// filtered set of order rows into operational statistics without
// reading from or writing to storage.
package services
