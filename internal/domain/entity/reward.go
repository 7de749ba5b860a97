package entity

import "time"

// RewardStatus is the lifecycle of a reward lot. The only permitted
// transition is earned -> redeemed; expiry is reserved for future policy.
type RewardStatus string

const (
	RewardEarned   RewardStatus = "earned"
	RewardRedeemed RewardStatus = "redeemed"
	RewardExpired  RewardStatus = "expired"
)

// RewardLot is a discrete batch of points minted by one settlement. A lot is
// immutable once created except for the earned->redeemed transition and the
// split performed on partial redemption: the original lot is truncated to the
// consumed points and marked redeemed, and a new earned lot holds the
// remainder. The sum of earned lots for a user is their redeemable balance.
type RewardLot struct {
	ID            uint
	TransactionID *uint // Purchase transaction that minted the lot; nil when the settlement moved no money.
	UserID        uint
	Points        int // Always > 0.
	Status        RewardStatus
	CreatedAt     time.Time
}
