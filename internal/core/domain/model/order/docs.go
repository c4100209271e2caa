// Package order contains the order aggregate and its lifecycle rules.
//
// An Order owns its line items exclusively: they are created atomically with
// the order and never added or removed individually afterwards. The order
// moves through a fixed forward-only status machine
// (INITIATED -> SENT -> DELIVERED) where DELIVERED is terminal and always
// accompanied by a soft delete. A soft-deleted order becomes active again only
// through an explicit restore, which clears the tombstone and resets the
// status to INITIATED.
package order
