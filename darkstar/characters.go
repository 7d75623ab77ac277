package darkstar

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/arcanusdsp/server/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Characters answers character lookups against the darkstar database.
type Characters struct {
	db      *gorm.DB
	blocked Blocklist
	logger  *zap.Logger
}

func NewCharacters(db *gorm.DB, blocked Blocklist, logger *zap.Logger) *Characters {
	return &Characters{db: db, blocked: blocked, logger: logger}
}

type Job struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// JobLevels scans the per-job level columns of char_jobs.
type JobLevels struct {
	War int `gorm:"column:war"`
	Mnk int `gorm:"column:mnk"`
	Whm int `gorm:"column:whm"`
	Blm int `gorm:"column:blm"`
	Rdm int `gorm:"column:rdm"`
	Thf int `gorm:"column:thf"`
	Pld int `gorm:"column:pld"`
	Drk int `gorm:"column:drk"`
	Bst int `gorm:"column:bst"`
	Brd int `gorm:"column:brd"`
	Rng int `gorm:"column:rng"`
	Sam int `gorm:"column:sam"`
	Nin int `gorm:"column:nin"`
	Drg int `gorm:"column:drg"`
	Smn int `gorm:"column:smn"`
	Blu int `gorm:"column:blu"`
	Cor int `gorm:"column:cor"`
	Pup int `gorm:"column:pup"`
	Dnc int `gorm:"column:dnc"`
	Sch int `gorm:"column:sch"`
	Geo int `gorm:"column:geo"`
	Run int `gorm:"column:run"`
}

func (l JobLevels) byID() [JobCount]int {
	return [JobCount]int{0,
		l.War, l.Mnk, l.Whm, l.Blm, l.Rdm, l.Thf, l.Pld, l.Drk, l.Bst, l.Brd, l.Rng,
		l.Sam, l.Nin, l.Drg, l.Smn, l.Blu, l.Cor, l.Pup, l.Dnc, l.Sch, l.Geo, l.Run,
	}
}

// jobColumns selects every job level column of cj, NULLs as zero.
func jobColumns() string {
	cols := make([]string, 0, JobCount-1)
	for _, abbr := range jobAbbrs[1:] {
		cols = append(cols, fmt.Sprintf("COALESCE(cj.%[1]s, 0) AS %[1]s", abbr))
	}
	return strings.Join(cols, ", ")
}

// ---- Online list ----

// OnlineCharacter is a row of the who's online list.
type OnlineCharacter struct {
	CharID      int64  `json:"charid"`
	CharName    string `json:"charname"`
	NameFlags   int64  `json:"nameflags"`
	PosZone     int    `json:"pos_zone"`
	ZoneName    string `json:"zonename"`
	GMLevel     int    `json:"gmlevel"`
	LS1Name     string `json:"ls1name"`
	LS2Name     string `json:"ls2name"`
	LS1Color    string `json:"ls1color"`
	LS2Color    string `json:"ls2color"`
	LS1Rank     int    `json:"ls1rank"`
	LS2Rank     int    `json:"ls2rank"`
	MJob        int    `json:"mjob"`
	SJob        int    `json:"sjob"`
	MLvl        int    `json:"mlvl"`
	SLvl        int    `json:"slvl"`
	IsNewPlayer int    `json:"isnewplayer"`
	Mentor      int    `json:"mentor"`
	Jobs        []Job  `json:"jobs"`
}

type onlineRow struct {
	JobLevels `gorm:"embedded"`

	CharID      int64  `gorm:"column:charid"`
	CharName    string `gorm:"column:charname"`
	NameFlags   int64  `gorm:"column:nameflags"`
	PosZone     int    `gorm:"column:pos_zone"`
	ZoneName    string `gorm:"column:zonename"`
	GMLevel     int    `gorm:"column:gmlevel"`
	LS1Name     string `gorm:"column:ls1name"`
	LS2Name     string `gorm:"column:ls2name"`
	LS1Color    int    `gorm:"column:ls1color"`
	LS2Color    int    `gorm:"column:ls2color"`
	LS1Rank     int    `gorm:"column:ls1rank"`
	LS2Rank     int    `gorm:"column:ls2rank"`
	MJob        int    `gorm:"column:mjob"`
	SJob        int    `gorm:"column:sjob"`
	MLvl        int    `gorm:"column:mlvl"`
	SLvl        int    `gorm:"column:slvl"`
	IsNewPlayer int    `gorm:"column:isnewplayer"`
	Mentor      int    `gorm:"column:mentor"`
	IsHidden    int    `gorm:"column:ishidden"`
}

// Online returns the visible online characters, GMs first and then by
// name, along with the number of distinct client addresses.
func (s *Characters) Online(ctx context.Context) ([]OnlineCharacter, int64, error) {
	sql := `SELECT COALESCE(c.charid, 0) AS charid, COALESCE(c.charname, '') AS charname,
			COALESCE(cs.nameflags, 0) AS nameflags, COALESCE(c.pos_zone, 0) AS pos_zone, COALESCE(c.gmlevel, 0) AS gmlevel,
			COALESCE(ls1.name, '') AS ls1name, COALESCE(ls2.name, '') AS ls2name,
			COALESCE(ls1.color, 0) AS ls1color, COALESCE(ls2.color, 0) AS ls2color,
			s.linkshellrank1 AS ls1rank, s.linkshellrank2 AS ls2rank,
			COALESCE(cs.mjob, 0) AS mjob, COALESCE(cs.sjob, 0) AS sjob, COALESCE(cs.mlvl, 0) AS mlvl, COALESCE(cs.slvl, 0) AS slvl,
			COALESCE(c.isnewplayer, 0) AS isnewplayer, COALESCE(c.mentor, 0) AS mentor,
			` + jobColumns() + `, COALESCE(z.name, '') AS zonename,
			` + gmHiddenExpr + ` AS ishidden
		FROM accounts_sessions AS s
		LEFT JOIN chars AS c ON s.charid = c.charid
		LEFT JOIN linkshells AS ls1 ON s.linkshellid1 = ls1.linkshellid
		LEFT JOIN linkshells AS ls2 ON s.linkshellid2 = ls2.linkshellid
		LEFT JOIN char_stats AS cs ON s.charid = cs.charid
		LEFT JOIN char_jobs AS cj ON s.charid = cj.charid
		LEFT JOIN zone_settings AS z ON c.pos_zone = z.zoneid
		ORDER BY c.gmlevel DESC, c.charname ASC`

	var rows []onlineRow
	if err := s.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	characters := make([]OnlineCharacter, 0, len(rows))
	for _, r := range rows {
		if r.CharName == "" || r.IsHidden >= 1 {
			continue
		}
		if !HasGMFlag(r.NameFlags) {
			r.GMLevel = 0
		}
		if isAnonymous(r.NameFlags) && r.GMLevel > 0 {
			continue
		}

		c := OnlineCharacter{
			CharID:      r.CharID,
			CharName:    r.CharName,
			NameFlags:   r.NameFlags,
			PosZone:     r.PosZone,
			ZoneName:    r.ZoneName,
			GMLevel:     r.GMLevel,
			LS1Name:     r.LS1Name,
			LS2Name:     r.LS2Name,
			LS1Color:    LinkshellHTMLColor(r.LS1Color),
			LS2Color:    LinkshellHTMLColor(r.LS2Color),
			LS1Rank:     r.LS1Rank,
			LS2Rank:     r.LS2Rank,
			MJob:        r.MJob,
			SJob:        r.SJob,
			MLvl:        r.MLvl,
			SLvl:        r.SLvl,
			IsNewPlayer: r.IsNewPlayer,
			Mentor:      r.Mentor,
			Jobs:        make([]Job, 0, JobCount),
		}
		levels := r.byID()
		for id := 0; id < JobCount; id++ {
			c.Jobs = append(c.Jobs, Job{ID: id, Name: JobAbbr(id), Level: levels[id]})
		}
		if c.GMLevel > 0 {
			c.LS1Name, c.LS2Name = "", ""
			c.LS1Color, c.LS2Color = LinkshellHTMLColor(0), LinkshellHTMLColor(0)
		}
		characters = append(characters, c)
	}

	sort.SliceStable(characters, func(i, j int) bool {
		a, b := characters[i], characters[j]
		if (a.GMLevel > 0) != (b.GMLevel > 0) {
			return a.GMLevel > 0
		}
		return a.CharName < b.CharName
	})

	var unique int64
	err := s.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT client_addr) FROM accounts_sessions").
		Scan(&unique).Error
	if err != nil {
		return nil, 0, err
	}
	return characters, unique, nil
}

// ---- Name search ----

type CharacterName struct {
	CharID   int64  `json:"charid" gorm:"column:charid"`
	CharName string `json:"charname" gorm:"column:charname"`
}

// ByName returns the characters whose name contains name. Blocked
// characters are never listed.
func (s *Characters) ByName(ctx context.Context, name string) ([]CharacterName, error) {
	n, err := normalizeSearchName("character", name)
	if err != nil {
		return nil, err
	}

	var rows []CharacterName
	err = s.db.WithContext(ctx).Model(&model.Char{}).
		Select("charid, charname").
		Where("charname LIKE ?", likeContains(n)).
		Order("charname").
		Scan(&rows).Error
	if err != nil {
		s.logger.Warn("character search failed", zap.String("name", n), zap.Error(err))
		return nil, composeErr("characters", err)
	}

	out := make([]CharacterName, 0, len(rows))
	for _, r := range rows {
		if r.CharID == 0 || r.CharName == "" || s.blocked.Contains(r.CharID) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// ---- Account character list ----

type CharacterLinkshell struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Rank  int    `json:"rank"`
}

// AccountCharacter is a character shown on its owner's profile page.
type AccountCharacter struct {
	CharID      int64                `json:"charid" gorm:"column:charid"`
	CharName    string               `json:"charname" gorm:"column:charname"`
	PosZone     int                  `json:"pos_zone" gorm:"column:pos_zone"`
	ZoneName    string               `json:"zonename" gorm:"column:zonename"`
	IsNewPlayer int                  `json:"isnewplayer" gorm:"column:isnewplayer"`
	Mentor      int                  `json:"mentor" gorm:"column:mentor"`
	NameFlags   int64                `json:"nameflags" gorm:"column:nameflags"`
	MJob        int                  `json:"mjob" gorm:"column:mjob"`
	SJob        int                  `json:"sjob" gorm:"column:sjob"`
	MLvl        int                  `json:"mlvl" gorm:"column:mlvl"`
	SLvl        int                  `json:"slvl" gorm:"column:slvl"`
	Race        int                  `json:"race" gorm:"column:race"`
	Face        int                  `json:"face" gorm:"column:face"`
	Sessions    int                  `json:"-" gorm:"column:sessions"`
	IsOnline    bool                 `json:"isonline" gorm:"-"`
	Linkshells  []CharacterLinkshell `json:"linkshells" gorm:"-"`
}

// ByAccountID lists an account's characters with their equipped
// linkshells. The linkshell lookups run concurrently but results keep
// the name order of the character query.
func (s *Characters) ByAccountID(ctx context.Context, accID int64) ([]AccountCharacter, error) {
	sql := `SELECT c.charid, c.charname, c.pos_zone, c.isnewplayer, c.mentor,
			COALESCE(cs.nameflags, 0) AS nameflags, COALESCE(cs.mjob, 0) AS mjob, COALESCE(cs.sjob, 0) AS sjob,
			COALESCE(cs.mlvl, 0) AS mlvl, COALESCE(cs.slvl, 0) AS slvl,
			COALESCE(z.name, '') AS zonename, COALESCE(cl.race, 0) AS race, COALESCE(cl.face, 0) AS face,
			(SELECT COUNT(*) FROM accounts_sessions AS acs WHERE acs.charid = c.charid) AS sessions
		FROM chars AS c
		LEFT JOIN char_look AS cl ON c.charid = cl.charid
		LEFT JOIN char_stats AS cs ON c.charid = cs.charid
		LEFT JOIN zone_settings AS z ON c.pos_zone = z.zoneid
		WHERE c.accid = ? ORDER BY c.charname ASC`

	var chars []AccountCharacter
	if err := s.db.WithContext(ctx).Raw(sql, accID).Scan(&chars).Error; err != nil {
		s.logger.Warn("account characters failed", zap.Int64("accid", accID), zap.Error(err))
		return nil, composeErr("account characters", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range chars {
		chars[i].IsOnline = chars[i].Sessions > 0
		g.Go(func() error {
			ls, err := s.equippedLinkshells(gctx, chars[i].CharID)
			if err != nil {
				return err
			}
			chars[i].Linkshells = ls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("account linkshells failed", zap.Int64("accid", accID), zap.Error(err))
		return nil, composeErr("account characters", err)
	}
	if chars == nil {
		chars = []AccountCharacter{}
	}
	return chars, nil
}

type pearlRow struct {
	ItemID int    `gorm:"column:itemid"`
	Extra  []byte `gorm:"column:extra"`
}

// equippedLinkshells returns the linkshells whose shell, sack or pearl
// the character has equipped.
func (s *Characters) equippedLinkshells(ctx context.Context, charID int64) ([]CharacterLinkshell, error) {
	var pearls []pearlRow
	err := s.db.WithContext(ctx).Raw(`SELECT ci.itemid, ci.extra FROM char_inventory AS ci
		INNER JOIN char_equip AS ce ON ce.charid = ci.charid AND ce.slotid = ci.slot AND ce.containerid = 0
		WHERE ci.charid = ? AND ci.location = 0 AND ce.equipslotid > 0 AND ci.itemid IN ?
		ORDER BY ce.equipslotid`, charID, []int{itemLinkshell, itemLinksack, itemLinkpearl}).
		Scan(&pearls).Error
	if err != nil {
		return nil, err
	}

	out := make([]CharacterLinkshell, 0, len(pearls))
	if len(pearls) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(pearls))
	for _, p := range pearls {
		if id, ok := linkshellIDFromExtra(p.Extra); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return out, nil
	}

	var shells []model.Linkshell
	if err := s.db.WithContext(ctx).Where("linkshellid IN ?", ids).Find(&shells).Error; err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Linkshell, len(shells))
	for _, l := range shells {
		byID[l.LinkshellID] = l
	}

	for _, p := range pearls {
		id, ok := linkshellIDFromExtra(p.Extra)
		if !ok {
			continue
		}
		l, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, CharacterLinkshell{
			ID:    l.LinkshellID,
			Name:  l.Name,
			Color: LinkshellHTMLColor(l.Color),
			Rank:  LinkshellRank(p.ItemID),
		})
	}
	return out, nil
}

// ---- Profile ----

// CharacterBase holds the scalar columns of a character profile.
type CharacterBase struct {
	CharID       int64      `json:"charid" gorm:"column:charid"`
	AccID        int64      `json:"accid" gorm:"column:accid"`
	CharName     string     `json:"charname" gorm:"column:charname"`
	Nation       int        `json:"nation" gorm:"column:nation"`
	PosZone      int        `json:"pos_zone" gorm:"column:pos_zone"`
	HomeZone     int        `json:"home_zone" gorm:"column:home_zone"`
	IsNewPlayer  int        `json:"isnewplayer" gorm:"column:isnewplayer"`
	Mentor       int        `json:"mentor" gorm:"column:mentor"`
	Face         int        `json:"face" gorm:"column:face"`
	Race         int        `json:"race" gorm:"column:race"`
	Size         int        `json:"size" gorm:"column:size"`
	RankSandoria int        `json:"rank_sandoria" gorm:"column:rank_sandoria"`
	RankBastok   int        `json:"rank_bastok" gorm:"column:rank_bastok"`
	RankWindurst int        `json:"rank_windurst" gorm:"column:rank_windurst"`
	NameFlags    int64      `json:"nameflags" gorm:"column:nameflags"`
	MJob         int        `json:"mjob" gorm:"column:mjob"`
	SJob         int        `json:"sjob" gorm:"column:sjob"`
	Title        int        `json:"title" gorm:"column:title"`
	MLvl         int        `json:"mlvl" gorm:"column:mlvl"`
	SLvl         int        `json:"slvl" gorm:"column:slvl"`
	Sessions     int        `json:"-" gorm:"column:isonline"`
	LastModified *time.Time `json:"-" gorm:"column:timelastmodify"`
	GMLevel      int        `json:"-" gorm:"column:gmlevel"`
	IsHidden     int        `json:"-" gorm:"column:ishidden"`
}

type EquipSlot struct {
	EquipSlotID int    `json:"equipslotid" gorm:"column:equipslotid"`
	ItemID      int    `json:"itemid" gorm:"column:itemid"`
	ItemName    string `json:"itemname,omitempty" gorm:"column:itemname"`
}

type CraftSkill struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// AuctionSale is a completed auction house sale.
type AuctionSale struct {
	ItemID     int    `json:"itemid" gorm:"column:itemid"`
	ItemName   string `json:"itemname" gorm:"column:itemname"`
	SellerName string `json:"seller_name" gorm:"column:seller_name"`
	BuyerName  string `json:"buyer_name" gorm:"column:buyer_name"`
	Sale       int64  `json:"sale" gorm:"column:sale"`
	SellDate   int64  `json:"sell_date" gorm:"column:sell_date"`
}

type BazaarItem struct {
	ItemID   int    `json:"itemid" gorm:"column:itemid"`
	ItemName string `json:"itemname" gorm:"column:itemname"`
	Quantity int    `json:"quantity" gorm:"column:quantity"`
	Bazaar   int64  `json:"bazaar" gorm:"column:bazaar"`
}

// CharacterProfile is the full public profile of one character.
type CharacterProfile struct {
	CharacterBase
	Rank           int                  `json:"rank"`
	IsOnline       bool                 `json:"isonline"`
	TimeLastModify int64                `json:"timelastmodify"`
	Equipment      map[int]EquipSlot    `json:"equipment"`
	Jobs           []Job                `json:"jobs"`
	JobsRows       [][]Job              `json:"jobsrows"`
	Crafts         []CraftSkill         `json:"crafts"`
	AHHistory      []AuctionSale        `json:"ahhistory"`
	Bazaar         []BazaarItem         `json:"bazaar"`
	Linkshells     []CharacterLinkshell `json:"linkshells"`
}

const (
	equipSlots        = 16
	ahHistoryPublic   = 10
	ahHistoryAdmin    = 75
	gmHiddenThreshold = 1
)

// ByID composes a character profile. Admins see a longer auction
// history; blocked characters are reported as not found to everyone.
func (s *Characters) ByID(ctx context.Context, charID int64, isAdmin bool) (*CharacterProfile, error) {
	p := &CharacterProfile{}
	db := s.db.WithContext(ctx)

	err := runSteps(
		func() error { return s.loadBase(db, charID, p) },
		func() error { return s.loadEquipment(db, p) },
		func() error { return s.loadJobs(db, p) },
		func() error { return s.loadCrafts(db, p) },
		func() error { return s.loadAuctionHistory(db, p, isAdmin) },
		func() error { return s.loadBazaar(db, p) },
		func() error {
			ls, err := s.equippedLinkshells(ctx, p.CharID)
			if err != nil {
				return err
			}
			if p.IsHidden >= gmHiddenThreshold {
				ls = []CharacterLinkshell{}
			}
			p.Linkshells = ls
			return nil
		},
	)
	if err != nil {
		s.logger.Warn("character profile failed", zap.Int64("charid", charID), zap.Error(err))
		return nil, composeErr("character profile", err)
	}
	return p, nil
}

func (s *Characters) loadBase(db *gorm.DB, charID int64, p *CharacterProfile) error {
	sql := `SELECT c.charid, c.accid, c.charname, c.nation, c.pos_zone, c.home_zone, c.gmlevel, c.isnewplayer, c.mentor,
			COALESCE(cl.face, 0) AS face, COALESCE(cl.race, 0) AS race, COALESCE(cl.size, 0) AS size,
			COALESCE(cp.rank_sandoria, 0) AS rank_sandoria, COALESCE(cp.rank_bastok, 0) AS rank_bastok,
			COALESCE(cp.rank_windurst, 0) AS rank_windurst,
			COALESCE(cs.nameflags, 0) AS nameflags, COALESCE(cs.mjob, 0) AS mjob, COALESCE(cs.sjob, 0) AS sjob,
			COALESCE(cs.title, 0) AS title, COALESCE(cs.mlvl, 0) AS mlvl, COALESCE(cs.slvl, 0) AS slvl,
			(SELECT COUNT(*) FROM accounts_sessions AS acs WHERE acs.charid = c.charid) AS isonline,
			act.timelastmodify AS timelastmodify,
			` + gmHiddenExpr + ` AS ishidden
		FROM chars AS c
		LEFT JOIN char_look AS cl ON c.charid = cl.charid
		LEFT JOIN char_profile AS cp ON c.charid = cp.charid
		LEFT JOIN char_stats AS cs ON c.charid = cs.charid
		LEFT JOIN accounts AS act ON c.accid = act.id
		WHERE c.charid = ?
		LIMIT 1`

	var rows []CharacterBase
	if err := db.Raw(sql, charID).Scan(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 || rows[0].CharID == 0 || s.blocked.Contains(rows[0].CharID) {
		return ErrNotFound
	}
	p.CharacterBase = rows[0]
	p.IsOnline = p.Sessions > 0
	if p.LastModified != nil {
		p.TimeLastModify = p.LastModified.UnixMilli()
	}

	switch p.Nation {
	case nationSandoria:
		p.Rank = p.RankSandoria
	case nationBastok:
		p.Rank = p.RankBastok
	case nationWindurst:
		p.Rank = p.RankWindurst
	}
	return nil
}

func (s *Characters) loadEquipment(db *gorm.DB, p *CharacterProfile) error {
	var rows []EquipSlot
	err := db.Raw(`SELECT ce.equipslotid, COALESCE(ci.itemid, 0) AS itemid, `+itemNameExpr+`
		FROM char_equip AS ce
		LEFT JOIN char_inventory AS ci ON ce.charid = ci.charid AND ce.containerid = ci.location AND ce.slotid = ci.slot
		`+itemNameJoins("ci.itemid")+`
		WHERE ce.charid = ? ORDER BY ce.equipslotid ASC`, p.CharID).Scan(&rows).Error
	if err != nil {
		return err
	}

	p.Equipment = make(map[int]EquipSlot, equipSlots)
	for i := 0; i < equipSlots; i++ {
		p.Equipment[i] = EquipSlot{EquipSlotID: i}
	}
	for _, e := range rows {
		p.Equipment[e.EquipSlotID] = e
	}
	return nil
}

func (s *Characters) loadJobs(db *gorm.DB, p *CharacterProfile) error {
	var rows []JobLevels
	if err := db.Model(&model.CharJobs{}).Where("charid = ?", p.CharID).Limit(1).Scan(&rows).Error; err != nil {
		return err
	}
	var levels [JobCount]int
	if len(rows) > 0 {
		levels = rows[0].byID()
	}

	p.Jobs = make([]Job, 0, JobCount)
	p.Jobs = append(p.Jobs, Job{})
	for id := 1; id < JobCount; id++ {
		p.Jobs = append(p.Jobs, Job{ID: id, Name: JobAbbr(id), Level: levels[id]})
	}

	// two jobs per display row, skipping the empty job
	p.JobsRows = make([][]Job, 0, (JobCount)/2)
	for i := 1; i < len(p.Jobs); i += 2 {
		end := i + 2
		if end > len(p.Jobs) {
			end = len(p.Jobs)
		}
		p.JobsRows = append(p.JobsRows, p.Jobs[i:end])
	}
	return nil
}

func (s *Characters) loadCrafts(db *gorm.DB, p *CharacterProfile) error {
	var skills []model.CharSkill
	err := db.Where("charid = ? AND skillid BETWEEN ? AND ?", p.CharID, craftSkills[0].ID, craftSkills[len(craftSkills)-1].ID).
		Find(&skills).Error
	if err != nil {
		return err
	}
	levels := make(map[int]int, len(skills))
	for _, sk := range skills {
		levels[sk.SkillID] = int(math.Round(float64(sk.Value) / 10))
	}

	p.Crafts = make([]CraftSkill, 0, len(craftSkills))
	for _, c := range craftSkills {
		p.Crafts = append(p.Crafts, CraftSkill{ID: c.ID, Name: c.Name, Level: levels[c.ID]})
	}
	return nil
}

func (s *Characters) loadAuctionHistory(db *gorm.DB, p *CharacterProfile, isAdmin bool) error {
	limit := ahHistoryPublic
	if isAdmin {
		limit = ahHistoryAdmin
	}
	p.AHHistory = []AuctionSale{}
	return db.Raw(`SELECT ah.itemid, ah.seller_name, ah.buyer_name, ah.sale, ah.sell_date, `+itemNameExpr+`
		FROM auction_house AS ah
		`+itemNameJoins("ah.itemid")+`
		WHERE (ah.seller = ? OR ah.buyer_name = ?) AND ah.sell_date != 0 -- completed sales only
		ORDER BY ah.sell_date DESC LIMIT ?`, p.CharID, p.CharName, limit).Scan(&p.AHHistory).Error
}

func (s *Characters) loadBazaar(db *gorm.DB, p *CharacterProfile) error {
	p.Bazaar = []BazaarItem{}
	return db.Raw(`SELECT ci.itemid, ci.quantity, ci.bazaar, `+itemNameExpr+`
		FROM char_inventory AS ci
		`+itemNameJoins("ci.itemid")+`
		WHERE ci.charid = ? AND ci.bazaar > 0
		ORDER BY ci.slot`, p.CharID).Scan(&p.Bazaar).Error
}

// ---- Unstuck ----

// Unstuck moves one of the account's characters back to its home point.
// A character with no previous zone gets its home zone as previous zone.
func (s *Characters) Unstuck(ctx context.Context, accID, charID int64) error {
	db := s.db.WithContext(ctx)

	var chars []model.Char
	if err := db.Where("accid = ? AND charid = ?", accID, charID).Limit(1).Find(&chars).Error; err != nil {
		s.logger.Warn("unstuck lookup failed", zap.Int64("charid", charID), zap.Error(err))
		return composeErr("character", err)
	}
	if len(chars) == 0 {
		return ErrNotFound
	}
	c := chars[0]
	if c.PosZone == JailZone {
		return ErrJailed
	}

	prevZone := c.PosPrevZone
	if prevZone == 0 {
		prevZone = c.HomeZone
	}

	err := db.Model(&model.Char{}).Where("charid = ?", charID).Updates(map[string]interface{}{
		"pos_zone":     c.HomeZone,
		"pos_prevzone": prevZone,
		"pos_rot":      c.HomeRot,
		"pos_x":        c.HomeX,
		"pos_y":        c.HomeY,
		"pos_z":        c.HomeZ,
	}).Error
	if err != nil {
		s.logger.Warn("unstuck update failed", zap.Int64("charid", charID), zap.Error(err))
		return composeErr("character", err)
	}
	return nil
}
