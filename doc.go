// Package debtbook provides the types and functions for tracking a
// user's outstanding debts as a prioritized collection, applying
// payments against the highest-priority debt, and persisting accounts
// and debts across sessions. It is designed to be local-first: all
// state lives in human-readable JSONL files on disk.
//
// The core functionalities include:
//   - Debt Lifecycle: Creating liabilities, shrinking their balance
//     through payments, and retiring them into a paid-off set once the
//     balance falls below a small epsilon.
//   - Prioritization: An ordered collection of active debts (Schedule)
//     kept sorted under a pluggable payoff Strategy (Avalanche or
//     Snowball), re-sorted after every mutation.
//   - Accounts and Sessions: A username-keyed account table (Registry)
//     answering authentication and registration, and a Controller
//     owning the single active session.
//   - Data Persistence: Fail-soft encoding and decoding of accounts and
//     per-user debt collections to and from versioned JSONL records.
//
// This package serves as the foundational logic for the `dbk`
// command-line tool, which exposes each operation as a subcommand.
package debtbook
