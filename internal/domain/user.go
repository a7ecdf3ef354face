package domain

import "time"

// User represents a guest account with a prepaid balance.
// The balance is debited on every successful booking and can be
// overwritten (not topped up) through an upsert.
type User struct {
	ID        int64
	Balance   int64
	CreatedAt time.Time
}

// HasSufficientBalance returns true if the user can afford the given amount
func (u *User) HasSufficientBalance(amount int64) bool {
	return u.Balance >= amount
}
