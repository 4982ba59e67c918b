package battler

import (
	"github.com/KirkDiggler/rpg-realtime/internal/combat/action"
	"github.com/KirkDiggler/rpg-realtime/internal/combat/regen"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

//go:generate mockgen -destination=mock/mock_collaborators.go -package=battlermock github.com/KirkDiggler/rpg-realtime/internal/combat/battler Presenter,Executor

// Stats is the stat-bearing battler behind an entity. The entity references it and
// never owns its lifecycle.
type Stats interface {
	regen.Subject

	EVA() float64
	VisionMultiplier() float64
	Restrictions() entities.Restrictions
	AddState(stateID int, sourceID string)
	CanPaySkillCost(skill *entities.Skill) bool
	PaySkillCost(skill *entities.Skill)
}

// Body is the entity's presence on the grid
type Body interface {
	Position() entities.Point
	Facing() entities.Direction
	SetFacing(d entities.Direction)
	IsMoving() bool
	// Step moves one tile without turning and reports whether the move started
	Step(d entities.Direction) bool
	SetSpeedBonus(bonus int)
	SetThrough(through bool)
}

// Grid answers spatial questions
type Grid interface {
	Distance(a, b entities.Point) float64
	DirectionTo(from, to entities.Point) entities.Direction
	IsPassable(p entities.Point) bool
}

// Pose is a visual stance cue
type Pose string

// Poses
const (
	PoseIdle  Pose = "idle"
	PoseCast  Pose = "cast"
	PoseGuard Pose = "guard"
	PoseDodge Pose = "dodge"
	PoseHurt  Pose = "hurt"
	PoseDead  Pose = "dead"
)

// Notice is a short balloon cue shown over an entity
type Notice string

// Notices
const (
	NoticeEngaged Notice = "engaged"
	NoticeAlerted Notice = "alerted"
	NoticeParry   Notice = "parry"
	NoticeMiss    Notice = "miss"
)

// Presenter receives presentation cues. Implementations must not call back into the
// simulation.
type Presenter interface {
	PlayAnimation(entityID string, animationID int)
	ShowPopup(entityID string, resource entities.Resource, amount int)
	PlayPose(entityID string, pose Pose)
	ShowNotice(entityID string, notice Notice)
}

// Executor consumes the actions an entity decided on
type Executor interface {
	Execute(actions []*action.Action) error
}
