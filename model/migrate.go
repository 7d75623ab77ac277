package model

import "gorm.io/gorm"

// darkstarModels mirrors the parts of the game server schema the site
// reads. The game server owns these tables; they are only created for
// sqlite development databases and tests.
var darkstarModels = []interface{}{
	&Account{},
	&AccountSession{},
	&Char{},
	&CharLook{},
	&CharProfile{},
	&CharStats{},
	&CharJobs{},
	&CharVar{},
	&CharEquip{},
	&CharInventory{},
	&CharSkill{},
	&Linkshell{},
	&AuctionSale{},
	&Zone{},
	&ItemArmor{},
	&ItemBasic{},
	&ItemFurnishing{},
	&ItemPuppet{},
	&ItemUsable{},
	&ItemWeapon{},
	&ItemMod{},
	&ItemModPet{},
	&SynthRecipe{},
	&MobSpawnPoint{},
	&MobGroup{},
	&MobPool{},
	&MobFamily{},
	&MobDrop{},
	&MobDropScripted{},
	&MobSkillList{},
	&MobSkill{},
	&BcnmInfo{},
	&BcnmBattlefield{},
	&BcnmLoot{},
	&Spell{},
	&BlueSpell{},
}

// MigrateOwned creates the tables this site owns.
func MigrateOwned(db *gorm.DB) error {
	return db.AutoMigrate(&AuditLog{})
}

// MigrateDarkstar creates the game server tables. Never run it against
// a live darkstar database.
func MigrateDarkstar(db *gorm.DB) error {
	return db.AutoMigrate(darkstarModels...)
}
