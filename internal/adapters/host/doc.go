// Package host provides in-memory implementations of the point-of-sale host
// ports: the order store, the contact draft store and the screen catalog.
// The invoicing extension decorates these; it never replaces them.
package host
