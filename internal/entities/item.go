package entities

// Item is a usable tool. Items either cast a skill or recover resources on the user.
type Item struct {
	ID        int    `yaml:"id" json:"id" jsonschema:"required"`
	Name      string `yaml:"name" json:"name"`
	SkillID   int    `yaml:"skill_id" json:"skill_id"`
	RecoverHP int    `yaml:"recover_hp" json:"recover_hp"`
	RecoverMP int    `yaml:"recover_mp" json:"recover_mp"`
	RecoverTP int    `yaml:"recover_tp" json:"recover_tp"`
	Cooldown  int    `yaml:"cooldown" json:"cooldown"`
}

// CastsSkill reports whether using the item produces an action instead of a direct effect
func (i *Item) CastsSkill() bool {
	return i.SkillID > 0
}
