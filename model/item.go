package model

// The six item tables share an itemid and a name; an item id may appear
// in more than one of them.

type ItemArmor struct {
	ItemID     int    `gorm:"column:itemid;primaryKey"`
	Name       string `gorm:"column:name;size:24"`
	Level      int    `gorm:"column:level"`
	Jobs       int64  `gorm:"column:jobs"`
	ShieldSize int    `gorm:"column:shieldsize"`
	ScriptType int    `gorm:"column:scripttype"`
	Slot       int    `gorm:"column:slot"`
	RSlot      int    `gorm:"column:rslot"`
}

func (ItemArmor) TableName() string { return "item_armor" }

type ItemBasic struct {
	ItemID    int    `gorm:"column:itemid;primaryKey"`
	SubID     int    `gorm:"column:subid"`
	Name      string `gorm:"column:name;size:24"`
	SortName  string `gorm:"column:sortname;size:24"`
	StackSize int    `gorm:"column:stacksize"`
	Flags     int    `gorm:"column:flags"`
	AH        int    `gorm:"column:ah"`
	NoSale    int    `gorm:"column:nosale"`
	BaseSell  int    `gorm:"column:basesell"`
}

func (ItemBasic) TableName() string { return "item_basic" }

type ItemFurnishing struct {
	ItemID       int    `gorm:"column:itemid;primaryKey"`
	Name         string `gorm:"column:name;size:24"`
	Storage      int    `gorm:"column:storage"`
	Moghancement int    `gorm:"column:moghancement"`
	Element      int    `gorm:"column:element"`
	Aura         int    `gorm:"column:aura"`
}

func (ItemFurnishing) TableName() string { return "item_furnishing" }

type ItemPuppet struct {
	ItemID  int    `gorm:"column:itemid;primaryKey"`
	Name    string `gorm:"column:name;size:24"`
	Slot    int    `gorm:"column:slot"`
	Element int64  `gorm:"column:element"`
}

func (ItemPuppet) TableName() string { return "item_puppet" }

type ItemUsable struct {
	ItemID        int    `gorm:"column:itemid;primaryKey"`
	Name          string `gorm:"column:name;size:24"`
	ValidTargets  int    `gorm:"column:validtargets"`
	Activation    int    `gorm:"column:activation"`
	Animation     int    `gorm:"column:animation"`
	AnimationTime int    `gorm:"column:animationtime"`
	MaxCharges    int    `gorm:"column:maxcharges"`
	UseDelay      int    `gorm:"column:usedelay"`
	ReuseDelay    int64  `gorm:"column:reusedelay"`
	AoE           int    `gorm:"column:aoe"`
}

func (ItemUsable) TableName() string { return "item_usable" }

type ItemWeapon struct {
	ItemID       int    `gorm:"column:itemid;primaryKey"`
	Name         string `gorm:"column:name;size:24"`
	Skill        int    `gorm:"column:skill"`
	SubSkill     int    `gorm:"column:subskill"`
	DmgType      int    `gorm:"column:dmgtype"`
	Hit          int    `gorm:"column:hit"`
	Delay        int    `gorm:"column:delay"`
	Dmg          int    `gorm:"column:dmg"`
	UnlockPoints int    `gorm:"column:unlock_points"`
}

func (ItemWeapon) TableName() string { return "item_weapon" }

type ItemMod struct {
	ItemID int `gorm:"column:itemid;primaryKey"`
	ModID  int `gorm:"column:modid;primaryKey"`
	Value  int `gorm:"column:value"`
}

func (ItemMod) TableName() string { return "item_mods" }

type ItemModPet struct {
	ItemID int `gorm:"column:itemid;primaryKey"`
	ModID  int `gorm:"column:modid;primaryKey"`
	Value  int `gorm:"column:value"`
}

func (ItemModPet) TableName() string { return "item_mods_pet" }

// SynthRecipe is a crafting recipe; ingredient and result columns are item ids.
type SynthRecipe struct {
	ID           int    `gorm:"column:id;primaryKey"`
	Desynth      int    `gorm:"column:desynth"`
	KeyItem      int    `gorm:"column:keyitem"`
	Wood         int    `gorm:"column:wood"`
	Smith        int    `gorm:"column:smith"`
	Gold         int    `gorm:"column:gold"`
	Cloth        int    `gorm:"column:cloth"`
	Leather      int    `gorm:"column:leather"`
	Bone         int    `gorm:"column:bone"`
	Alchemy      int    `gorm:"column:alchemy"`
	Cook         int    `gorm:"column:cook"`
	Crystal      int    `gorm:"column:crystal"`
	HQCrystal    int    `gorm:"column:hqcrystal"`
	Ingredient1  int    `gorm:"column:ingredient1"`
	Ingredient2  int    `gorm:"column:ingredient2"`
	Ingredient3  int    `gorm:"column:ingredient3"`
	Ingredient4  int    `gorm:"column:ingredient4"`
	Ingredient5  int    `gorm:"column:ingredient5"`
	Ingredient6  int    `gorm:"column:ingredient6"`
	Ingredient7  int    `gorm:"column:ingredient7"`
	Ingredient8  int    `gorm:"column:ingredient8"`
	Result       int    `gorm:"column:result"`
	ResultHQ1    int    `gorm:"column:resulthq1"`
	ResultHQ2    int    `gorm:"column:resulthq2"`
	ResultHQ3    int    `gorm:"column:resulthq3"`
	ResultQty    int    `gorm:"column:resultqty"`
	ResultHQ1Qty int    `gorm:"column:resulthq1qty"`
	ResultHQ2Qty int    `gorm:"column:resulthq2qty"`
	ResultHQ3Qty int    `gorm:"column:resulthq3qty"`
	ResultName   string `gorm:"column:resultname;size:64"`
}

func (SynthRecipe) TableName() string { return "synth_recipes" }
