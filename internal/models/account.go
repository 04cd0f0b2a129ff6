package models

import "time"

// Account holds the funds paid out to an address
type Account struct {
	Address        string    `bson:"_id" json:"address"`
	Balance        string    `bson:"balance" json:"balance"` // wei, decimal string
	Payouts        int       `bson:"payouts" json:"payouts"`
	AppliedPayouts []string  `bson:"appliedPayouts,omitempty" json:"-"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasPayout reports whether payoutID was already credited to the account
func (a *Account) HasPayout(payoutID string) bool {
	for _, id := range a.AppliedPayouts {
		if id == payoutID {
			return true
		}
	}
	return false
}
