package darkstar

import (
	"context"
	"fmt"
	"sort"

	"github.com/arcanusdsp/server/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Items answers item lookups.
type Items struct {
	db     *gorm.DB
	index  *ItemIndex
	logger *zap.Logger
}

func NewItems(db *gorm.DB, index *ItemIndex, logger *zap.Logger) *Items {
	return &Items{db: db, index: index, logger: logger}
}

func (s *Items) Index() *ItemIndex { return s.index }

// Item merges the rows of every item table holding the id. Attributes of
// tables the item is absent from are left nil.
type Item struct {
	ItemID int    `json:"itemid"`
	Name   string `json:"name"`

	// item_armor
	Level      *int   `json:"level,omitempty"`
	Jobs       *int64 `json:"jobs,omitempty"`
	ShieldSize *int   `json:"shieldsize,omitempty"`
	ScriptType *int   `json:"scripttype,omitempty"`
	Slot       *int   `json:"slot,omitempty"`
	RSlot      *int   `json:"rslot,omitempty"`

	// item_basic
	SubID     *int    `json:"subid,omitempty"`
	SortName  *string `json:"sortname,omitempty"`
	StackSize *int    `json:"stacksize,omitempty"`
	Flags     *int    `json:"flags,omitempty"`
	AH        *int    `json:"ah,omitempty"`
	NoSale    *int    `json:"nosale,omitempty"`
	BaseSell  *int    `json:"basesell,omitempty"`

	// item_furnishing, item_puppet
	Storage      *int   `json:"storage,omitempty"`
	Moghancement *int   `json:"moghancement,omitempty"`
	Element      *int64 `json:"element,omitempty"`
	Aura         *int   `json:"aura,omitempty"`

	// item_usable
	ValidTargets  *int   `json:"validtargets,omitempty"`
	Activation    *int   `json:"activation,omitempty"`
	Animation     *int   `json:"animation,omitempty"`
	AnimationTime *int   `json:"animationtime,omitempty"`
	MaxCharges    *int   `json:"maxcharges,omitempty"`
	UseDelay      *int   `json:"usedelay,omitempty"`
	ReuseDelay    *int64 `json:"reusedelay,omitempty"`
	AoE           *int   `json:"aoe,omitempty"`

	// item_weapon
	Skill        *int `json:"skill,omitempty"`
	SubSkill     *int `json:"subskill,omitempty"`
	DmgType      *int `json:"dmgtype,omitempty"`
	Hit          *int `json:"hit,omitempty"`
	Delay        *int `json:"delay,omitempty"`
	Dmg          *int `json:"dmg,omitempty"`
	UnlockPoints *int `json:"unlock_points,omitempty"`

	Mods      []ItemModifier `json:"mods"`
	Crafts    []Craft        `json:"crafts"`
	Drops     []ItemDrop     `json:"drops"`
	Bazaar    []ItemBazaar   `json:"bazaar"`
	AHHistory []AuctionSale  `json:"ahhistory"`
	AHStock   int64          `json:"ahstock"`
}

type ItemModifier struct {
	ModID int    `json:"modid"`
	Value int    `json:"value"`
	Pet   bool   `json:"pet"`
	Text  string `json:"text"`
}

type CraftRequirement struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type CraftIngredient struct {
	ItemID int    `json:"itemid"`
	Count  int    `json:"count"`
	Name   string `json:"name"`
}

type CraftResult struct {
	Type   string `json:"type"`
	ItemID int    `json:"itemid"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

// Craft is a synthesis recipe producing an item.
type Craft struct {
	Crystal      int                     `json:"crystal"`
	Ingredients  map[int]CraftIngredient `json:"ingredients"`
	Requirements []CraftRequirement      `json:"requirements"`
	Results      []CraftResult           `json:"results"`
}

type ItemDrop struct {
	MobID        int64   `json:"mobid" gorm:"column:mobid"`
	ItemRate     int     `json:"itemrate" gorm:"column:itemrate"`
	ZoneID       int     `json:"zoneid" gorm:"column:zoneid"`
	MobName      string  `json:"mobname" gorm:"column:mobname"`
	PolutilsName string  `json:"polutils_name" gorm:"column:polutils_name"`
	PosX         float64 `json:"pos_x" gorm:"column:pos_x"`
	PosY         float64 `json:"pos_y" gorm:"column:pos_y"`
	PosZ         float64 `json:"pos_z" gorm:"column:pos_z"`
	ZoneName     string  `json:"zonename" gorm:"column:zonename"`
}

type ItemBazaar struct {
	CharID   int64  `json:"charid" gorm:"column:charid"`
	CharName string `json:"charname" gorm:"column:charname"`
	ItemID   int    `json:"itemid" gorm:"column:itemid"`
	Bazaar   int64  `json:"bazaar" gorm:"column:bazaar"`
	ItemName string `json:"itemname" gorm:"column:itemname"`
}

const (
	itemAHHistoryPublic = 10
	itemAHHistoryAdmin  = 100
)

// ByName searches item names. The prebuilt index answers when it is
// ready; otherwise every item table is queried.
func (s *Items) ByName(ctx context.Context, name string) ([]ItemName, error) {
	n, err := normalizeSearchName("item", name)
	if err != nil {
		return nil, err
	}
	if s.index != nil && s.index.Ready() {
		return s.index.Search(likeContains(n)), nil
	}

	seen := make(map[int]struct{})
	out := make([]ItemName, 0)
	for _, table := range itemTables {
		var rows []ItemName
		err := s.db.WithContext(ctx).Table(table).Select("itemid, name").
			Where("name LIKE ?", likeContains(n)).Scan(&rows).Error
		if err != nil {
			s.logger.Warn("item search failed", zap.String("table", table), zap.Error(err))
			return nil, composeErr("items", err)
		}
		for _, r := range rows {
			if _, ok := seen[r.ID]; ok || r.Name == "" {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}
	sortItemNames(out)
	return out, nil
}

// ByID composes an item from every item table plus its recipes, drops,
// bazaar listings and auction data. Modifiers are only loaded for admins.
func (s *Items) ByID(ctx context.Context, itemID int, isAdmin bool) (*Item, error) {
	item := &Item{ItemID: itemID}
	db := s.db.WithContext(ctx)

	steps := []func() error{
		func() error { return s.loadTables(db, item) },
	}
	if isAdmin {
		steps = append(steps,
			func() error { return s.loadMods(db, item, &model.ItemMod{}, false) },
			func() error { return s.loadMods(db, item, &model.ItemModPet{}, true) },
		)
	}
	steps = append(steps,
		func() error { return s.loadCrafts(db, item) },
		func() error { return s.loadDrops(db, item) },
		func() error { return s.loadBazaar(db, item) },
		func() error { return s.loadAuctionHistory(db, item, isAdmin) },
		func() error {
			return db.Model(&model.AuctionSale{}).
				Where("itemid = ? AND sell_date = 0", item.ItemID).
				Count(&item.AHStock).Error
		},
	)

	if err := runSteps(steps...); err != nil {
		s.logger.Warn("item lookup failed", zap.Int("itemid", itemID), zap.Error(err))
		return nil, composeErr("the item", err)
	}
	return item, nil
}

func ptr[T any](v T) *T { return &v }

// loadTables queries all six item tables and merges whatever rows exist,
// in itemTables order; later tables overwrite shared attributes.
func (s *Items) loadTables(db *gorm.DB, item *Item) error {
	found := false
	id := item.ItemID

	var armor []model.ItemArmor
	if err := db.Where("itemid = ?", id).Find(&armor).Error; err != nil {
		return err
	}
	for _, r := range armor {
		found = true
		item.Name = r.Name
		item.Level, item.Jobs, item.ShieldSize = ptr(r.Level), ptr(r.Jobs), ptr(r.ShieldSize)
		item.ScriptType, item.Slot, item.RSlot = ptr(r.ScriptType), ptr(r.Slot), ptr(r.RSlot)
	}

	var basic []model.ItemBasic
	if err := db.Where("itemid = ?", id).Find(&basic).Error; err != nil {
		return err
	}
	for _, r := range basic {
		found = true
		item.Name = r.Name
		item.SubID, item.SortName, item.StackSize = ptr(r.SubID), ptr(r.SortName), ptr(r.StackSize)
		item.Flags, item.AH, item.NoSale, item.BaseSell = ptr(r.Flags), ptr(r.AH), ptr(r.NoSale), ptr(r.BaseSell)
	}

	var furnishing []model.ItemFurnishing
	if err := db.Where("itemid = ?", id).Find(&furnishing).Error; err != nil {
		return err
	}
	for _, r := range furnishing {
		found = true
		item.Name = r.Name
		item.Storage, item.Moghancement = ptr(r.Storage), ptr(r.Moghancement)
		item.Element, item.Aura = ptr(int64(r.Element)), ptr(r.Aura)
	}

	var puppet []model.ItemPuppet
	if err := db.Where("itemid = ?", id).Find(&puppet).Error; err != nil {
		return err
	}
	for _, r := range puppet {
		found = true
		item.Name = r.Name
		item.Slot, item.Element = ptr(r.Slot), ptr(r.Element)
	}

	var usable []model.ItemUsable
	if err := db.Where("itemid = ?", id).Find(&usable).Error; err != nil {
		return err
	}
	for _, r := range usable {
		found = true
		item.Name = r.Name
		item.ValidTargets, item.Activation, item.Animation = ptr(r.ValidTargets), ptr(r.Activation), ptr(r.Animation)
		item.AnimationTime, item.MaxCharges, item.UseDelay = ptr(r.AnimationTime), ptr(r.MaxCharges), ptr(r.UseDelay)
		item.ReuseDelay, item.AoE = ptr(r.ReuseDelay), ptr(r.AoE)
	}

	var weapon []model.ItemWeapon
	if err := db.Where("itemid = ?", id).Find(&weapon).Error; err != nil {
		return err
	}
	for _, r := range weapon {
		found = true
		item.Name = r.Name
		item.Skill, item.SubSkill, item.DmgType = ptr(r.Skill), ptr(r.SubSkill), ptr(r.DmgType)
		item.Hit, item.Delay, item.Dmg, item.UnlockPoints = ptr(r.Hit), ptr(r.Delay), ptr(r.Dmg), ptr(r.UnlockPoints)
	}

	if !found {
		return ErrNotFound
	}
	item.Mods = []ItemModifier{}
	return nil
}

// loadMods appends the rows of item_mods or item_mods_pet, chosen by the
// model passed in.
func (s *Items) loadMods(db *gorm.DB, item *Item, table interface{}, pet bool) error {
	var rows []model.ItemMod
	if err := db.Model(table).Where("itemid = ?", item.ItemID).Order("modid").Scan(&rows).Error; err != nil {
		return err
	}
	for _, m := range rows {
		item.Mods = append(item.Mods, ItemModifier{
			ModID: m.ModID,
			Value: m.Value,
			Pet:   pet,
			Text:  ItemModText(m.ModID, m.Value),
		})
	}
	return nil
}

var craftColumns = []struct {
	Name  string
	Level func(r model.SynthRecipe) int
}{
	{"Alchemy", func(r model.SynthRecipe) int { return r.Alchemy }},
	{"Bonecraft", func(r model.SynthRecipe) int { return r.Bone }},
	{"Clothcraft", func(r model.SynthRecipe) int { return r.Cloth }},
	{"Cooking", func(r model.SynthRecipe) int { return r.Cook }},
	{"Goldsmithing", func(r model.SynthRecipe) int { return r.Gold }},
	{"Leathercraft", func(r model.SynthRecipe) int { return r.Leather }},
	{"Smithing", func(r model.SynthRecipe) int { return r.Smith }},
	{"Woodworking", func(r model.SynthRecipe) int { return r.Wood }},
}

func (s *Items) loadCrafts(db *gorm.DB, item *Item) error {
	id := item.ItemID
	var recipes []model.SynthRecipe
	err := db.Where("result = ? OR resulthq1 = ? OR resulthq2 = ? OR resulthq3 = ?", id, id, id, id).
		Order("id").Find(&recipes).Error
	if err != nil {
		return err
	}

	item.Crafts = make([]Craft, 0, len(recipes))
	for _, r := range recipes {
		item.Crafts = append(item.Crafts, s.buildCraft(r))
	}
	return nil
}

func (s *Items) itemName(id int) (string, bool) {
	if s.index == nil {
		return "", false
	}
	return s.index.Name(id)
}

func (s *Items) buildCraft(r model.SynthRecipe) Craft {
	c := Craft{
		Crystal:      r.Crystal,
		Ingredients:  make(map[int]CraftIngredient),
		Requirements: make([]CraftRequirement, 0, len(craftColumns)),
		Results:      make([]CraftResult, 0, 4),
	}

	for _, col := range craftColumns {
		if lvl := col.Level(r); lvl > 0 {
			c.Requirements = append(c.Requirements, CraftRequirement{Name: col.Name, Level: lvl})
		}
	}
	sort.SliceStable(c.Requirements, func(i, j int) bool {
		return c.Requirements[i].Level > c.Requirements[j].Level
	})

	ingredients := []int{
		r.Ingredient1, r.Ingredient2, r.Ingredient3, r.Ingredient4,
		r.Ingredient5, r.Ingredient6, r.Ingredient7, r.Ingredient8,
	}
	for _, id := range ingredients {
		if id == 0 {
			continue
		}
		in, ok := c.Ingredients[id]
		if !ok {
			in = CraftIngredient{ItemID: id, Name: fmt.Sprintf("Unknown Item: %d", id)}
			if n, ok := s.itemName(id); ok {
				in.Name = n
			}
		}
		in.Count++
		c.Ingredients[id] = in
	}

	results := []struct {
		typ    string
		itemID int
		count  int
	}{
		{"Normal", r.Result, r.ResultQty},
		{"HQ1", r.ResultHQ1, r.ResultHQ1Qty},
		{"HQ2", r.ResultHQ2, r.ResultHQ2Qty},
		{"HQ3", r.ResultHQ3, r.ResultHQ3Qty},
	}
	for _, res := range results {
		if res.itemID <= 0 {
			continue
		}
		out := CraftResult{Type: res.typ, ItemID: res.itemID, Name: "Unknown Item", Count: res.count}
		if n, ok := s.itemName(res.itemID); ok {
			out.Name = n
		}
		c.Results = append(c.Results, out)
	}
	return c
}

func (s *Items) loadDrops(db *gorm.DB, item *Item) error {
	item.Drops = []ItemDrop{}
	for _, table := range dropTables {
		var rows []ItemDrop
		err := db.Raw(`SELECT COALESCE(sp.mobid, 0) AS mobid, dl.itemrate, COALESCE(g.zoneid, 0) AS zoneid,
				COALESCE(sp.mobname, '') AS mobname, COALESCE(sp.polutils_name, '') AS polutils_name,
				COALESCE(sp.pos_x, 0) AS pos_x, COALESCE(sp.pos_y, 0) AS pos_y, COALESCE(sp.pos_z, 0) AS pos_z,
				COALESCE(z.name, '') AS zonename
			FROM `+table+` AS dl
			LEFT JOIN mob_groups AS g ON dl.dropid = g.dropid
			LEFT JOIN mob_spawn_points AS sp ON g.groupid = sp.groupid
			LEFT JOIN zone_settings AS z ON g.zoneid = z.zoneid
			WHERE dl.itemid = ? ORDER BY sp.polutils_name ASC`, item.ItemID).Scan(&rows).Error
		if err != nil {
			return err
		}
		item.Drops = append(item.Drops, rows...)
	}
	return nil
}

func (s *Items) loadBazaar(db *gorm.DB, item *Item) error {
	item.Bazaar = []ItemBazaar{}
	return db.Raw(`SELECT COALESCE(c.charid, 0) AS charid, COALESCE(c.charname, '') AS charname,
			ci.itemid, ci.bazaar, `+itemNameExpr+`
		FROM char_inventory AS ci
		`+itemNameJoins("ci.itemid")+`
		LEFT JOIN chars AS c ON c.charid = ci.charid
		WHERE ci.bazaar > 0 AND ci.itemid = ?
		ORDER BY ci.bazaar ASC`, item.ItemID).Scan(&item.Bazaar).Error
}

func (s *Items) loadAuctionHistory(db *gorm.DB, item *Item, isAdmin bool) error {
	limit := itemAHHistoryPublic
	if isAdmin {
		limit = itemAHHistoryAdmin
	}
	item.AHHistory = []AuctionSale{}
	return db.Raw(`SELECT ah.itemid, ah.seller_name, ah.buyer_name, ah.sale, ah.sell_date, `+itemNameExpr+`
		FROM auction_house AS ah
		`+itemNameJoins("ah.itemid")+`
		WHERE ah.itemid = ? AND ah.sell_date != 0
		ORDER BY ah.sell_date DESC LIMIT ?`, item.ItemID, limit).Scan(&item.AHHistory).Error
}
