package model

type Spell struct {
	SpellID int    `gorm:"column:spellid;primaryKey"`
	Name    string `gorm:"column:name;size:20"`
}

func (Spell) TableName() string { return "spell_list" }

type BlueSpell struct {
	SpellID    int `gorm:"column:spellid;primaryKey"`
	MobSkillID int `gorm:"column:mob_skill_id"`
	SetPoints  int `gorm:"column:set_points"`
}

func (BlueSpell) TableName() string { return "blue_spell_list" }
