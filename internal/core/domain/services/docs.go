// Package services provides stateless domain services for the delivery
// lifecycle: pricing and one-time delivery code generation.
//
// FeeCalculator fixes an order's pricing triple at placement; it is pure and
// deterministic so stored fees can always be recomputed for audit.
// CodeGenerator draws short numeric confirmation codes from a cryptographic
// source.
package services
