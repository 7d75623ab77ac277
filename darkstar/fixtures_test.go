package darkstar

import (
	"testing"
	"time"

	dbsqlite "github.com/arcanusdsp/server/db/sqlite"
	"github.com/arcanusdsp/server/model"
	"github.com/arcanusdsp/server/testutil"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	zoneBastok  = 234
	zoneRabbits = 100

	accAlpha  = 1000
	accBanned = 1001

	charAlpha   = 21828
	charBravo   = 21829
	charCharlie = 21830
	charDelta   = 21831
	charEcho    = 21832
	charZulu    = 21833
	charBlocked = 21834

	mobRabbit = 17187001
	mobNM     = 17187002

	itemCopperOre   = 640
	itemFireCrystal = 4096
	itemBronzeDag   = 16465
)

var lastModified = time.Date(2016, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return testutil.SetupTestDB(t)
}

func testLogger() *zap.Logger { return zap.NewNop() }

// seedCharacters creates one account with a mix of online characters:
// Alpha (player), Bravo (gm hidden), Charlie (anonymous GM), Delta (GM),
// Echo (gmlevel without the GM flag) and Zulu (offline, with a pearl).
func seedCharacters(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.Seed(t, db,
		&model.Zone{ZoneID: zoneBastok, Name: "Bastok_Markets"},
		&model.Account{ID: accAlpha, Login: "alpha", Password: dbsqlite.MySQLPassword("hunter2"), Status: 1, Priv: 1, TimeLastModify: &lastModified},
		&model.Linkshell{LinkshellID: 7, Name: "Pearls", Color: 0x0F00},
		&model.Linkshell{LinkshellID: 8, Name: "Hidden", Color: 0x00F0},
	)

	chars := []model.Char{
		{CharID: charAlpha, AccID: accAlpha, CharName: "Alpha", Nation: nationBastok, PosZone: zoneBastok, HomeZone: zoneBastok},
		{CharID: charBravo, AccID: accAlpha, CharName: "Bravo", PosZone: zoneBastok},
		{CharID: charCharlie, AccID: accAlpha, CharName: "Charlie", PosZone: zoneBastok, GMLevel: 3},
		{CharID: charDelta, AccID: accAlpha, CharName: "Delta", PosZone: zoneBastok, GMLevel: 2},
		{CharID: charEcho, AccID: accAlpha, CharName: "Echo", PosZone: zoneBastok, GMLevel: 1},
		{CharID: charZulu, AccID: accAlpha, CharName: "Zulu", PosZone: zoneBastok},
		{CharID: charBlocked, AccID: accAlpha, CharName: "Alphonse", PosZone: zoneBastok},
	}
	for i := range chars {
		testutil.Seed(t, db, &chars[i])
	}

	testutil.Seed(t, db,
		&model.CharStats{CharID: charAlpha, MJob: 1, MLvl: 75, SJob: 13, SLvl: 37},
		&model.CharStats{CharID: charBravo},
		&model.CharStats{CharID: charCharlie, NameFlags: 0x05000000 | flagAnonymous},
		&model.CharStats{CharID: charDelta, NameFlags: 0x04000000},
		&model.CharStats{CharID: charEcho},
		&model.CharJobs{CharID: charAlpha, War: 75, Nin: 37},
		&model.CharProfile{CharID: charAlpha, RankBastok: 6, RankSandoria: 1},
		&model.CharVar{CharID: charBravo, VarName: "gmhidden", Value: 1},

		&model.AccountSession{AccID: accAlpha, CharID: charAlpha, LinkshellID1: 7, LinkshellRank1: 3, ClientAddr: 1},
		&model.AccountSession{AccID: accAlpha, CharID: charBravo, ClientAddr: 1},
		&model.AccountSession{AccID: accAlpha, CharID: charCharlie, ClientAddr: 2},
		&model.AccountSession{AccID: accAlpha, CharID: charDelta, LinkshellID1: 7, ClientAddr: 3},
		&model.AccountSession{AccID: accAlpha, CharID: charEcho, ClientAddr: 4},

		// Zulu wears a pearl of linkshell 7, Bravo one of linkshell 8.
		&model.CharInventory{CharID: charZulu, Location: 0, Slot: 3, ItemID: itemLinkpearl, Quantity: 1, Extra: []byte{7, 0, 0, 0}},
		&model.CharEquip{CharID: charZulu, EquipSlotID: 17, SlotID: 3, ContainerID: 0},
		&model.CharInventory{CharID: charBravo, Location: 0, Slot: 4, ItemID: itemLinkshell, Quantity: 1, Extra: []byte{8, 0, 0, 0}},
		&model.CharEquip{CharID: charBravo, EquipSlotID: 17, SlotID: 4, ContainerID: 0},
	)
}

// seedItems creates copper ore, a fire crystal and a bronze dagger found
// in item_armor, item_basic and item_weapon, with a recipe, drops and
// auction data. Bazaar and auction rows belong to Alpha from seedCharacters.
func seedItems(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.Seed(t, db,
		&model.Zone{ZoneID: zoneRabbits, Name: "West_Ronfaure"},
		&model.ItemBasic{ItemID: itemCopperOre, Name: "copper_ore", SortName: "copper_ore", StackSize: 12, AH: 44, BaseSell: 6},
		&model.ItemBasic{ItemID: itemFireCrystal, Name: "fire_crystal", SortName: "fire_crystal", StackSize: 12, AH: 35},
		&model.ItemBasic{ItemID: itemBronzeDag, Name: "bronze_dagger", SortName: "bronze_dagger", StackSize: 1, AH: 2},
		&model.ItemWeapon{ItemID: itemBronzeDag, Name: "bronze_dagger", Skill: 2, Dmg: 3, Delay: 183},
		&model.ItemArmor{ItemID: itemBronzeDag, Name: "bronze_dagger", Level: 1, Jobs: 4194303, Slot: 3},
		&model.ItemMod{ItemID: itemBronzeDag, ModID: 1, Value: 10},
		&model.ItemModPet{ItemID: itemBronzeDag, ModID: 2, Value: -5},
		&model.SynthRecipe{
			ID: 1, Smith: 5, Gold: 9, Crystal: itemFireCrystal,
			Ingredient1: itemCopperOre, Ingredient2: itemCopperOre, Ingredient3: 9999,
			Result: itemBronzeDag, ResultQty: 1, ResultHQ1: itemBronzeDag, ResultHQ1Qty: 2,
			ResultName: "Bronze Dagger",
		},
		&model.MobFamily{FamilyID: 1, Family: "Rabbit", HP: 100},
		&model.MobPool{PoolID: 1, Name: "Forest_Hare", FamilyID: 1},
		&model.MobPool{PoolID: 2, Name: "Jaggedy-Eared_Jack", FamilyID: 1, MobType: 2},
		&model.MobGroup{GroupID: 1, PoolID: 1, ZoneID: zoneRabbits, DropID: 5, RespawnTime: 330, MinLevel: 10, MaxLevel: 80},
		&model.MobGroup{GroupID: 2, PoolID: 2, ZoneID: zoneRabbits, DropID: 6, RespawnTime: 3600, MinLevel: 10, MaxLevel: 80},
		&model.MobSpawnPoint{MobID: mobRabbit, MobName: "Forest_Hare", PolutilsName: "Forest Hare", GroupID: 1, PosX: 1.5, PosY: -2, PosZ: 30},
		&model.MobSpawnPoint{MobID: mobNM, MobName: "Jaggedy-Eared_Jack", PolutilsName: "Jaggedy-Eared Jack", GroupID: 2, PosX: 10, PosY: 0, PosZ: -4},
		&model.MobDrop{DropID: 5, ItemID: itemCopperOre, ItemRate: 100},
		&model.MobDropScripted{DropID: 5, ItemID: itemFireCrystal, ItemRate: 50},
		&model.MobDrop{DropID: 6, ItemID: itemBronzeDag, ItemRate: 1000},
		&model.CharInventory{CharID: charAlpha, Location: 0, Slot: 1, ItemID: itemCopperOre, Quantity: 12, Bazaar: 500},
	)

	for i := 1; i <= 12; i++ {
		testutil.Seed(t, db, &model.AuctionSale{
			ItemID: itemCopperOre, Stack: 1, Seller: charAlpha, SellerName: "Alpha", BuyerName: "Bravo",
			Price: 1000, Sale: int64(900 + i), SellDate: int64(1450000000 + i),
		})
	}
	testutil.Seed(t, db,
		&model.AuctionSale{ItemID: itemCopperOre, Stack: 1, Seller: charAlpha, SellerName: "Alpha", Price: 1200},
		&model.AuctionSale{ItemID: itemCopperOre, Stack: 0, Seller: charAlpha, SellerName: "Alpha", Price: 150},
	)
}
