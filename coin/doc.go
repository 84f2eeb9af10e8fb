/*
Package coin provides the Amount type, an unsigned 128 bit integer used for
every value held in escrow, together with its parsing and arithmetic.
*/
package coin
