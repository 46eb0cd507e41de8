// Package kernel contains the shared value objects of the domain model:
// UUID identifiers, Price amounts, and Rating scores. All types are immutable,
// validated on construction, and safe for concurrent use. Zero values are
// invalid and fail Validate; always go through the constructors.
package kernel
