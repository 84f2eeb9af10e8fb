/*
Package vesting defines the interfaces shared by all parts of the escrow
ledger: storage, time, account identifiers and the context helpers used to
pass the logger between the execution environment and the extensions.

The accounting logic itself lives in x/subscription. Storage backends are
implemented in the store package, the execution environment that serializes
calls and commits state is in the app package.
*/
package vesting
