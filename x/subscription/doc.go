/*
Package subscription implements a time vested deposit ledger.

	A deposit is a principal amount paid by an account and earmarked for
	the owner of the contract. It vests linearly over a fixed number of
	periods, and until it is fulfilled the depositor may withdraw the
	amount released by the vesting formula.

Each account owns an ordered list of deposits. The position of a deposit in
that list is its identifier and never changes, because deposits are never
removed or reordered.

The recognized number of elapsed periods of a deposit, Paid, is recomputed
from the creation time and the current time by Ping. Withdraw pings first
and then instructs a TransferSink to pay the caller. The transfer is one way:
its outcome is never observed and never rolls back the ledger.

All operations other than Initialize require the contract to be initialized
with an owner first.
*/
package subscription
