// Package application wires the ledger to a parcel tracking session.
//
// A Tracker owns the single ledger of a session. It validates user input
// before anything is appended, since the ledger itself accepts any payload,
// and reports integrity checks as values so the front end can warn the user
// instead of stopping.
package application
