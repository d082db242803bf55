package entity

type LoyaltyTier string

const (
	TierBronze LoyaltyTier = "bronze"
	TierSilver LoyaltyTier = "silver"
	TierGold   LoyaltyTier = "gold"
)

type Guest struct {
	Base
	Name                 string      `db:"name"`
	Email                string      `db:"email"`
	Phone                *string     `db:"phone"`
	LoyaltyPoints        int         `db:"loyalty_points"`
	LoyaltyTier          LoyaltyTier `db:"loyalty_tier"`
	LoyaltyProgramActive bool        `db:"loyalty_program_active"`
}
