package vesting

import (
	"regexp"

	"github.com/iov-one/vesting/errors"
)

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
)

// isAccountID matches lowercase alphanumeric parts, optionally separated by
// a single "-" or "_", joined into dot separated segments.
var isAccountID = regexp.MustCompile(`^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`).MatchString

// AccountID identifies an account, for example "alice.testnet".
type AccountID string

// Validate returns an error if this is not a syntactically valid account
// identifier.
func (a AccountID) Validate() error {
	switch n := len(a); {
	case n == 0:
		return errors.Wrap(errors.ErrInvalidAccount, "empty")
	case n < minAccountIDLen:
		return errors.Wrapf(errors.ErrInvalidAccount, "too short: %q", string(a))
	case n > maxAccountIDLen:
		return errors.Wrapf(errors.ErrInvalidAccount, "too long: %d characters", n)
	}
	if !isAccountID(string(a)) {
		return errors.Wrapf(errors.ErrInvalidAccount, "malformed: %q", string(a))
	}
	return nil
}

// String implements fmt.Stringer.
func (a AccountID) String() string {
	return string(a)
}

// ParseAccountID returns a validated account identifier.
func ParseAccountID(s string) (AccountID, error) {
	a := AccountID(s)
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}
