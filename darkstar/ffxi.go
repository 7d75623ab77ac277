package darkstar

import (
	"encoding/binary"
	"fmt"
)

// jobAbbrs is indexed by job id; id 0 is "no job".
var jobAbbrs = [...]string{
	"", "war", "mnk", "whm", "blm", "rdm", "thf", "pld", "drk", "bst", "brd",
	"rng", "sam", "nin", "drg", "smn", "blu", "cor", "pup", "dnc", "sch", "geo", "run",
}

// JobCount includes the empty job at id 0.
const JobCount = len(jobAbbrs)

// JobAbbr returns the three letter abbreviation of a job id, or "".
func JobAbbr(id int) string {
	if id < 0 || id >= len(jobAbbrs) {
		return ""
	}
	return jobAbbrs[id]
}

// JobID returns the id of a job abbreviation, or 0.
func JobID(abbr string) int {
	for i, a := range jobAbbrs {
		if a == abbr {
			return i
		}
	}
	return 0
}

// LinkshellHTMLColor converts a packed 4-bit-per-channel linkshell color
// into a #RRGGBB string. Zero renders as "transparent".
func LinkshellHTMLColor(color int) string {
	if color == 0 {
		return "transparent"
	}
	r := ((color & 0x0F) << 4) + 0x0F
	g := (((color >> 4) & 0x0F) << 4) + 0x0F
	b := (((color >> 8) & 0x0F) << 4) + 0x0F
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Linkshell item ids.
const (
	itemLinkshell = 513
	itemLinksack  = 514
	itemLinkpearl = 515
)

// LinkshellRank maps the equipped linkshell item to its rank.
func LinkshellRank(itemID int) int {
	switch itemID {
	case itemLinkshell:
		return 1
	case itemLinksack:
		return 2
	case itemLinkpearl:
		return 3
	}
	return 0
}

// linkshellIDFromExtra decodes the linkshell id stored little-endian in
// the first four bytes of a pearl's extra blob.
func linkshellIDFromExtra(extra []byte) (int64, bool) {
	if len(extra) < 4 {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint32(extra[:4])), true
}

// craftSkills are the crafting skill ids of char_skills, in display order.
var craftSkills = []struct {
	ID   int
	Name string
}{
	{48, "Fishing"},
	{49, "Woodworking"},
	{50, "Smithing"},
	{51, "Goldsmithing"},
	{52, "Clothcraft"},
	{53, "Leathercraft"},
	{54, "Bonecraft"},
	{55, "Alchemy"},
	{56, "Cooking"},
	{57, "Synergy"},
}

// Nations as stored in chars.nation.
const (
	nationSandoria = 0
	nationBastok   = 1
	nationWindurst = 2
)

// JailZone is the zone id of Mordion Gaol.
const JailZone = 131
