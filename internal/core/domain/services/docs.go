// Package services contains domain services: stateless operations that work
// over multiple orders and do not belong to any single aggregate.
package services
