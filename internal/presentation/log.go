// Package presentation turns simulation cues into output a person can follow.
package presentation

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-realtime/internal/combat/battler"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
)

// LogPresenter writes every presentation cue to a structured logger. Pose changes
// are frequent and go out at debug level; the other cues use the configured level.
type LogPresenter struct {
	logger *slog.Logger
	level  slog.Level
}

var _ battler.Presenter = (*LogPresenter)(nil)

// LogConfig configures a LogPresenter
type LogConfig struct {
	// Logger defaults to slog.Default()
	Logger *slog.Logger
	Level  slog.Level
}

// NewLogPresenter creates a presenter that logs cues
func NewLogPresenter(cfg *LogConfig) *LogPresenter {
	p := &LogPresenter{logger: slog.Default(), level: slog.LevelInfo}
	if cfg == nil {
		return p
	}
	if cfg.Logger != nil {
		p.logger = cfg.Logger
	}
	p.level = cfg.Level
	return p
}

// PlayAnimation implements battler.Presenter
func (p *LogPresenter) PlayAnimation(entityID string, animationID int) {
	p.logger.Log(context.Background(), p.level, "Animation",
		"entity_id", entityID,
		"animation_id", animationID,
	)
}

// ShowPopup implements battler.Presenter
func (p *LogPresenter) ShowPopup(entityID string, resource entities.Resource, amount int) {
	p.logger.Log(context.Background(), p.level, "Popup",
		"entity_id", entityID,
		"resource", resource,
		"amount", amount,
	)
}

// PlayPose implements battler.Presenter
func (p *LogPresenter) PlayPose(entityID string, pose battler.Pose) {
	p.logger.Debug("Pose",
		"entity_id", entityID,
		"pose", pose,
	)
}

// ShowNotice implements battler.Presenter
func (p *LogPresenter) ShowNotice(entityID string, notice battler.Notice) {
	p.logger.Log(context.Background(), p.level, "Notice",
		"entity_id", entityID,
		"notice", notice,
	)
}
