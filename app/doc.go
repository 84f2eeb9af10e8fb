/*
Package app is the execution environment of the subscription contract.

It owns the committed store, serializes all calls, gives every call its own
cache and persists the result after each mutating call. It supplies the
caller account and the current time, and drains the payout queue into a
Payer.
*/
package app
