// Package grouporder contains the group order aggregate and its participant
// orders: a leader opens a shared cart, participants attach their composed
// items and sides while it is open, and the leader locks it exactly once.
// Locking freezes the cart into an immutable snapshot that is handed to the
// fulfillment gateway, retried verbatim until delivery is confirmed.
package grouporder
