package model

type MobSpawnPoint struct {
	MobID        int64   `gorm:"column:mobid;primaryKey"`
	MobName      string  `gorm:"column:mobname;size:24"`
	PolutilsName string  `gorm:"column:polutils_name;size:50"`
	GroupID      int     `gorm:"column:groupid;index"`
	PosX         float64 `gorm:"column:pos_x"`
	PosY         float64 `gorm:"column:pos_y"`
	PosZ         float64 `gorm:"column:pos_z"`
	PosRot       int     `gorm:"column:pos_rot"`
}

func (MobSpawnPoint) TableName() string { return "mob_spawn_points" }

type MobGroup struct {
	GroupID     int `gorm:"column:groupid;primaryKey"`
	PoolID      int `gorm:"column:poolid"`
	ZoneID      int `gorm:"column:zoneid"`
	RespawnTime int `gorm:"column:respawntime"`
	SpawnType   int `gorm:"column:spawntype"`
	DropID      int `gorm:"column:dropid"`
	HP          int `gorm:"column:hp"`
	MP          int `gorm:"column:mp"`
	MinLevel    int `gorm:"column:minlevel"`
	MaxLevel    int `gorm:"column:maxlevel"`
}

func (MobGroup) TableName() string { return "mob_groups" }

type MobPool struct {
	PoolID      int    `gorm:"column:poolid;primaryKey"`
	Name        string `gorm:"column:name;size:24"`
	FamilyID    int    `gorm:"column:familyid"`
	MobType     int    `gorm:"column:mobtype"`
	SkillListID int    `gorm:"column:skill_list_id"`
}

func (MobPool) TableName() string { return "mob_pools" }

type MobFamily struct {
	FamilyID int    `gorm:"column:familyid;primaryKey"`
	Family   string `gorm:"column:family;size:24"`
	HP       int    `gorm:"column:hp"`
	MP       int    `gorm:"column:mp"`
}

func (MobFamily) TableName() string { return "mob_family_system" }

type MobDrop struct {
	DropID   int `gorm:"column:dropid;primaryKey"`
	ItemID   int `gorm:"column:itemid;primaryKey"`
	ItemRate int `gorm:"column:itemrate"`
}

func (MobDrop) TableName() string { return "mob_droplist" }

type MobDropScripted struct {
	DropID   int `gorm:"column:dropid;primaryKey"`
	ItemID   int `gorm:"column:itemid;primaryKey"`
	ItemRate int `gorm:"column:itemrate"`
}

func (MobDropScripted) TableName() string { return "mob_droplist_scripted" }

type MobSkillList struct {
	SkillListName string `gorm:"column:skill_list_name;size:40"`
	SkillListID   int    `gorm:"column:skill_list_id;primaryKey"`
	MobSkillID    int    `gorm:"column:mob_skill_id;primaryKey"`
}

func (MobSkillList) TableName() string { return "mob_skill_lists" }

type MobSkill struct {
	MobSkillID   int    `gorm:"column:mob_skill_id;primaryKey"`
	MobAnimID    int    `gorm:"column:mob_anim_id"`
	MobSkillName string `gorm:"column:mob_skill_name;size:40"`
}

func (MobSkill) TableName() string { return "mob_skills" }
