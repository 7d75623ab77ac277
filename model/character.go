package model

// Char is a row of the darkstar chars table.
type Char struct {
	CharID      int64   `gorm:"column:charid;primaryKey"`
	AccID       int64   `gorm:"column:accid;index"`
	CharName    string  `gorm:"column:charname;size:15"`
	Nation      int     `gorm:"column:nation"`
	PosZone     int     `gorm:"column:pos_zone"`
	PosPrevZone int     `gorm:"column:pos_prevzone"`
	PosRot      int     `gorm:"column:pos_rot"`
	PosX        float64 `gorm:"column:pos_x"`
	PosY        float64 `gorm:"column:pos_y"`
	PosZ        float64 `gorm:"column:pos_z"`
	HomeZone    int     `gorm:"column:home_zone"`
	HomeRot     int     `gorm:"column:home_rot"`
	HomeX       float64 `gorm:"column:home_x"`
	HomeY       float64 `gorm:"column:home_y"`
	HomeZ       float64 `gorm:"column:home_z"`
	GMLevel     int     `gorm:"column:gmlevel"`
	IsNewPlayer int     `gorm:"column:isnewplayer"`
	Mentor      int     `gorm:"column:mentor"`
}

func (Char) TableName() string { return "chars" }

type CharLook struct {
	CharID int64 `gorm:"column:charid;primaryKey"`
	Face   int   `gorm:"column:face"`
	Race   int   `gorm:"column:race"`
	Size   int   `gorm:"column:size"`
}

func (CharLook) TableName() string { return "char_look" }

type CharProfile struct {
	CharID       int64 `gorm:"column:charid;primaryKey"`
	RankSandoria int   `gorm:"column:rank_sandoria"`
	RankBastok   int   `gorm:"column:rank_bastok"`
	RankWindurst int   `gorm:"column:rank_windurst"`
}

func (CharProfile) TableName() string { return "char_profile" }

type CharStats struct {
	CharID    int64 `gorm:"column:charid;primaryKey"`
	NameFlags int64 `gorm:"column:nameflags"`
	MJob      int   `gorm:"column:mjob"`
	SJob      int   `gorm:"column:sjob"`
	Title     int   `gorm:"column:title"`
	MLvl      int   `gorm:"column:mlvl"`
	SLvl      int   `gorm:"column:slvl"`
}

func (CharStats) TableName() string { return "char_stats" }

// CharJobs holds one level column per job, in job id order.
type CharJobs struct {
	CharID   int64 `gorm:"column:charid;primaryKey"`
	Unlocked int64 `gorm:"column:unlocked"`
	War      int   `gorm:"column:war"`
	Mnk      int   `gorm:"column:mnk"`
	Whm      int   `gorm:"column:whm"`
	Blm      int   `gorm:"column:blm"`
	Rdm      int   `gorm:"column:rdm"`
	Thf      int   `gorm:"column:thf"`
	Pld      int   `gorm:"column:pld"`
	Drk      int   `gorm:"column:drk"`
	Bst      int   `gorm:"column:bst"`
	Brd      int   `gorm:"column:brd"`
	Rng      int   `gorm:"column:rng"`
	Sam      int   `gorm:"column:sam"`
	Nin      int   `gorm:"column:nin"`
	Drg      int   `gorm:"column:drg"`
	Smn      int   `gorm:"column:smn"`
	Blu      int   `gorm:"column:blu"`
	Cor      int   `gorm:"column:cor"`
	Pup      int   `gorm:"column:pup"`
	Dnc      int   `gorm:"column:dnc"`
	Sch      int   `gorm:"column:sch"`
	Geo      int   `gorm:"column:geo"`
	Run      int   `gorm:"column:run"`
}

func (CharJobs) TableName() string { return "char_jobs" }

type CharVar struct {
	CharID  int64  `gorm:"column:charid;primaryKey"`
	VarName string `gorm:"column:varname;primaryKey;size:30"`
	Value   int    `gorm:"column:value"`
}

func (CharVar) TableName() string { return "char_vars" }

type CharEquip struct {
	CharID      int64 `gorm:"column:charid;primaryKey"`
	EquipSlotID int   `gorm:"column:equipslotid;primaryKey"`
	SlotID      int   `gorm:"column:slotid"`
	ContainerID int   `gorm:"column:containerid"`
}

func (CharEquip) TableName() string { return "char_equip" }

type CharInventory struct {
	CharID   int64  `gorm:"column:charid;primaryKey"`
	Location int    `gorm:"column:location;primaryKey"`
	Slot     int    `gorm:"column:slot;primaryKey"`
	ItemID   int    `gorm:"column:itemid"`
	Quantity int    `gorm:"column:quantity"`
	Bazaar   int64  `gorm:"column:bazaar"`
	Extra    []byte `gorm:"column:extra"`
}

func (CharInventory) TableName() string { return "char_inventory" }

type CharSkill struct {
	CharID  int64 `gorm:"column:charid;primaryKey"`
	SkillID int   `gorm:"column:skillid;primaryKey"`
	Value   int   `gorm:"column:value"`
	Rank    int   `gorm:"column:rank"`
}

func (CharSkill) TableName() string { return "char_skills" }

type Linkshell struct {
	LinkshellID int64  `gorm:"column:linkshellid;primaryKey"`
	Name        string `gorm:"column:name;size:29"`
	Color       int    `gorm:"column:color"`
}

func (Linkshell) TableName() string { return "linkshells" }

type AuctionSale struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	ItemID     int    `gorm:"column:itemid;index"`
	Stack      int    `gorm:"column:stack"`
	Seller     int64  `gorm:"column:seller"`
	SellerName string `gorm:"column:seller_name;size:15"`
	Date       int64  `gorm:"column:date"`
	Price      int64  `gorm:"column:price"`
	BuyerName  string `gorm:"column:buyer_name;size:15"`
	Sale       int64  `gorm:"column:sale"`
	SellDate   int64  `gorm:"column:sell_date"`
}

func (AuctionSale) TableName() string { return "auction_house" }

type Zone struct {
	ZoneID int    `gorm:"column:zoneid;primaryKey"`
	Name   string `gorm:"column:name;size:128"`
}

func (Zone) TableName() string { return "zone_settings" }
