// Package order contains the Order aggregate root and its Status state
// machine. The aggregate enforces the lifecycle rules: payload requirements
// are validated before any mutation, transitions only follow the table
// defined on Status, and staff and customer operations carry different
// permissions (customers may only cancel orders that are still Pending).
package order
