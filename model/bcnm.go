package model

type BcnmInfo struct {
	BcnmID      int    `gorm:"column:bcnmid;primaryKey"`
	ZoneID      int    `gorm:"column:zoneid"`
	Name        string `gorm:"column:name;size:30"`
	FastestName string `gorm:"column:fastestname;size:15"`
	FastestTime int    `gorm:"column:fastesttime"`
	TimeLimit   int    `gorm:"column:timelimit"`
	LevelCap    int    `gorm:"column:levelcap"`
	LootDropID  int    `gorm:"column:lootdropid"`
	Rules       int    `gorm:"column:rules"`
	PartySize   int    `gorm:"column:partysize"`
}

func (BcnmInfo) TableName() string { return "bcnm_info" }

type BcnmBattlefield struct {
	BcnmID            int   `gorm:"column:bcnmid;primaryKey"`
	BattlefieldNumber int   `gorm:"column:battlefieldnumber;primaryKey"`
	MonsterID         int64 `gorm:"column:monsterid;primaryKey"`
	Conditions        int   `gorm:"column:conditions"`
}

func (BcnmBattlefield) TableName() string { return "bcnm_battlefield" }

type BcnmLoot struct {
	LootDropID  int `gorm:"column:lootdropid;primaryKey"`
	ItemID      int `gorm:"column:itemid;primaryKey"`
	Rolls       int `gorm:"column:rolls"`
	LootGroupID int `gorm:"column:lootgroupid;primaryKey"`
}

func (BcnmLoot) TableName() string { return "bcnm_loot" }
