package domain

import "time"

// UnlimitedUses marks a redeem code without a usage cap.
const UnlimitedUses = -1

// CodeRewards is the bundle granted by a successful redemption. Each category
// is applied independently (best effort per reward line).
type CodeRewards struct {
	Xenocoins     int      `json:"xenocoins,omitempty"`
	Cash          int      `json:"cash,omitempty"`
	AccountPoints int      `json:"accountPoints,omitempty"`
	Collectibles  []string `json:"collectibles,omitempty"`
	Items         []string `json:"items,omitempty"`
}

// RedeemCode is a human-entered reward code. Matching is case-insensitive.
// A user id appears at most once in UsedBy; CurrentUses never exceeds MaxUses.
type RedeemCode struct {
	ID          string      `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Rewards     CodeRewards `json:"rewards"`
	MaxUses     int         `json:"maxUses"`
	CurrentUses int         `json:"currentUses"`
	IsActive    bool        `json:"isActive"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   *time.Time  `json:"expiresAt,omitempty"`
	UsedBy      []string    `json:"usedBy"`
}

// UsedByUser reports whether the given user already redeemed this code.
func (c *RedeemCode) UsedByUser(userID string) bool {
	for _, id := range c.UsedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Exhausted reports whether the usage cap has been reached.
func (c *RedeemCode) Exhausted() bool {
	return c.MaxUses != UnlimitedUses && c.CurrentUses >= c.MaxUses
}

// Expired reports whether the code's expiry has passed at the given time.
func (c *RedeemCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
