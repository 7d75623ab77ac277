package darkstar

import "math"

const (
	nmHPMultiplier  = 1.1
	mobHPMultiplier = 1.0
)

// MonsterHP mirrors the game server's max HP formula for a mob of the
// given level. A non-zero hp from mob_groups overrides the family scaling.
func MonsterHP(level, hp, familyHP int, isNM bool) int {
	var maxHP float64
	if hp == 0 {
		growth := 1.06
		switch {
		case level > 75:
			growth = 1.28
		case level > 65:
			growth = 1.27
		case level > 55:
			growth = 1.25
		case level > 50:
			growth = 1.21
		case level > 45:
			growth = 1.17
		case level > 35:
			growth = 1.14
		case level > 25:
			growth = 1.1
		}
		scale := float64(familyHP) / 100.0
		maxHP = math.Floor(18.0 * math.Pow(float64(level), growth) * scale)
		if isNM {
			maxHP *= 2.0
			if level > 75 {
				maxHP *= 2.5
			}
		}
	} else {
		maxHP = float64(hp)
	}

	if isNM {
		maxHP *= nmHPMultiplier
	} else {
		maxHP *= mobHPMultiplier
	}
	return int(math.Floor(maxHP))
}

func isNotorious(mobType int) bool { return mobType&0x02 == 0x02 }
