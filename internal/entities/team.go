package entities

// Team identifies which side an entity fights for
type Team string

// Teams
const (
	TeamAlly    Team = "ally"
	TeamEnemy   Team = "enemy"
	TeamNeutral Team = "neutral"
)

// Opposes reports whether the two teams are hostile to each other. Neutral opposes nobody.
func (t Team) Opposes(other Team) bool {
	return (t == TeamAlly && other == TeamEnemy) || (t == TeamEnemy && other == TeamAlly)
}

// EntityKind is the tagged variant of battle entity categories
type EntityKind string

// Entity kinds
const (
	KindPlayer EntityKind = "player"
	KindAlly   EntityKind = "ally"
	KindEnemy  EntityKind = "enemy"
)

// IsActor reports whether the kind belongs to the party (player or ally followers).
// Actors persist visually when dying instead of being destroyed.
func (k EntityKind) IsActor() bool {
	return k == KindPlayer || k == KindAlly
}

// AIProfile selects the decision strategy used by AI-controlled entities
type AIProfile string

// AI profiles
const (
	AIAggressive AIProfile = "aggressive"
	AISupport    AIProfile = "support"
	AIPassive    AIProfile = "passive"
)
