// Package faults is a closed set of boundary error variants: Network,
// Timeout, Parse and Panic. Call sites switch on these with errors.As
// instead of inspecting arbitrary runtime types, and MapError converts
// them to domain failures past the boundary.
package faults
