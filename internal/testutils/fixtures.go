package testutils

import (
	"github.com/KirkDiggler/rpg-realtime/internal/catalog"
	"github.com/KirkDiggler/rpg-realtime/internal/entities"
	"github.com/KirkDiggler/rpg-realtime/internal/testutils/builders"
)

// Skill ids of the combat fixture catalog
const (
	SkillSlash = iota + 1
	SkillShield
	SkillRoll
	SkillMend
	SkillBurst
)

// State and item ids of the combat fixture catalog
const (
	StatePoison = 1
	StateRoot   = 2
	ItemPotion  = 1
)

// Template ids of the combat fixture catalog
const (
	TemplateHero = iota + 1
	TemplateGoblin
	TemplateHealer
	TemplateCrate
)

// CreateCombatCatalogData returns a small but complete catalog: a player hero with
// attack, guard and dodge, an aggressive goblin that bursts on defeat, a support
// healer and an inanimate crate.
func CreateCombatCatalogData() *catalog.Data {
	return &catalog.Data{
		Skills: []entities.Skill{
			builders.NewSkillBuilder(SkillSlash, "Slash").
				WithDamage("a.atk * 2 - b.def").
				WithCooldown(30).
				Build(),
			builders.NewSkillBuilder(SkillShield, "Shield").
				WithGuard(&entities.Guard{Flat: 5, Percent: 20, ParryDuration: 10, ParryTPBonus: 10}).
				Build(),
			builders.NewSkillBuilder(SkillRoll, "Roll").
				WithDodge(&entities.Dodge{Steps: 4, SpeedBonus: 2, Invincible: true}).
				WithCooldown(20).
				Build(),
			builders.NewSkillBuilder(SkillMend, "Mend").
				WithScope(entities.ScopeAlly).
				WithRange(3).
				WithDamage("-20").
				WithCooldown(60).
				Build(),
			builders.NewSkillBuilder(SkillBurst, "Burst").
				WithProjectiles(4).
				WithRange(2).
				WithDamage("8").
				Build(),
		},
		States: []entities.State{
			{ID: StatePoison, Name: "Poison", Slip: entities.Slip{HP: entities.SlipRate{Flat: -10}}},
			{ID: StateRoot, Name: "Root", Root: true},
		},
		Items: []entities.Item{
			{ID: ItemPotion, Name: "Potion", RecoverHP: 40, Cooldown: 60},
		},
		Battlers: []entities.BattlerTemplate{
			builders.NewBattlerTemplateBuilder(TemplateHero, "Hero").
				WithKind(entities.KindPlayer).
				WithResources(120, 30, 100).
				WithAttack(12, 4).
				WithSkills(SkillSlash, SkillShield, SkillRoll).
				Build(),
			builders.NewBattlerTemplateBuilder(TemplateGoblin, "Goblin").
				WithResources(40, 0, 0).
				WithAttack(8, 2).
				WithSkills(SkillSlash, 0, 0).
				WithPrepareTime(20).
				WithOwnDefeat(entities.DefeatTrigger{SkillID: SkillBurst, Chance: 100}).
				Build(),
			builders.NewBattlerTemplateBuilder(TemplateHealer, "Healer").
				WithResources(30, 50, 0).
				WithAttack(4, 1).
				WithSkills(SkillSlash, 0, 0, SkillMend).
				WithAI(entities.AISupport).
				WithPrepareTime(10).
				Build(),
			builders.NewBattlerTemplateBuilder(TemplateCrate, "Crate").
				WithResources(20, 0, 0).
				Inanimate().
				Build(),
		},
	}
}
