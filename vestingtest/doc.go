/*
Package vestingtest provides test doubles for the execution environment: a
manually controlled clock and a transfer sink that records instructions.
*/
package vestingtest
