// Package accounts persists account records in the key-value store.
//
// Each account is one JSON document stored under its identity (the email
// address, matched exactly as entered). Records are created once, rewritten
// in full on every balance change and never deleted.
//
// Two write paths exist. Create refuses to replace an existing record and is
// what registration uses by default; Save overwrites unconditionally and
// backs the overwrite create mode.
//
// Stored values that no longer decode are reported as common.ErrStorage.
package accounts
