package darkstar

import (
	"fmt"
	"strings"
)

// itemModFormats maps a darkstar modifier id to its display format.
var itemModFormats = map[int]string{
	0:   "Invalid item modification. (0x00)",
	1:   "DEF: %d",
	2:   "HP +%d",
	3:   "HP +%d%%",
	4:   "Converts %d MP to HP",
	5:   "MP +%d",
	6:   "MP +%d",
	7:   "Converts %d HP to MP",
	8:   "STR +%d",
	9:   "DEX +%d",
	10:  "VIT +%d",
	11:  "AGI +%d",
	12:  "INT +%d",
	13:  "MND +%d",
	14:  "CHR +%d",
	15:  "Fire Defense +%d",
	16:  "Ice Defense +%d",
	17:  "Wind Defense +%d",
	18:  "Earth Defense +%d",
	19:  "Lightning Defense +%d",
	20:  "Water Defense +%d",
	21:  "Light Defense +%d",
	22:  "Dark Defense +%d",
	23:  "Attack +%d",
	24:  "Ranged Attack +%d",
	25:  "Accuracy +%d",
	26:  "Ranged Accuracy +%d",
	27:  "Enmity +%d",
	502: "Reduces Enmity Lost When Taking Damage +%d",
	28:  "Magic Attack +%d",
	29:  "Magic Defense +%d",
	30:  "Magic Accuracy +%d",
	31:  "Magic Evasion +%d",
	32:  "Fire Attack +%d",
	33:  "Ice Attack +%d",
	34:  "Wind Attack +%d",
	35:  "Earth Attack +%d",
	36:  "Lightning Attack +%d",
	37:  "Water Attack +%d",
	38:  "Light Attack +%d",
	39:  "Dark Attack +%d",
	40:  "Fire Accuracy +%d",
	41:  "Ice Accuracy +%d",
	42:  "Wind Accuracy +%d",
	43:  "Earth Accuracy +%d",
	44:  "Lightning Accuracy +%d",
	45:  "Water Accuracy +%d",
	46:  "Light Accuracy +%d",
	47:  "Dark Accuracy +%d",
	48:  "Weaponskill Accuracy +%d",
	49:  "Slash Resistance +%d",
	50:  "Pierce Resistance +%d",
	51:  "Impact Resistance +%d",
	52:  "Hand-to-Hand Resistance +%d",
	54:  "+%d Fire Resistance",
	55:  "+%d Ice Resistance",
	56:  "+%d Wind Resistance",
	57:  "+%d Earth Resistance",
	58:  "+%d Lightning Resistance",
	59:  "+%d Water Resistance",
	60:  "+%d Light Resistance",
	61:  "+%d Dark Resistance",
	62:  "%d%% Attack",
	63:  "%d%% Defense",
	64:  "%d%% Accuracy",
	65:  "%d%% Evasion",
	66:  "%d%% Ranged Attack",
	67:  "%d%% Ranged Attack Accuracy",
	68:  "Evasion +%d",
	69:  "Ranged Defense +%d",
	70:  "Ranged Evasion +%d",
	71:  "MP Recovered While Healing +%d",
	72:  "HP Recovered While Healing +%d",
	73:  "Increases TP Gain +%d",
	486: "Tactical Parry TP Bonus +%d",
	487: "Magic Burst Bonus +%d",
	488: "Inhibits TP Gain +%d%%",
	80:  "Hand-to-Hand Skill +%d",
	81:  "Dagger Skill +%d",
	82:  "Sword Skill +%d",
	83:  "Great Sword Skill +%d",
	84:  "Axe Skill +%d",
	85:  "Great Axe Skill +%d",
	86:  "Scythe Skill +%d",
	87:  "Polearm Skill +%d",
	88:  "Katana Skill +%d",
	89:  "Great Katana Skill +%d",
	90:  "Club Skill +%d",
	91:  "Staff Skill +%d",
	101: "Automaton Melee Skill +%d",
	102: "Automaton Range Skill +%d",
	103: "Automaton Magic Skill +%d",
	104: "Archery Skill +%d",
	105: "Marksman Skill +%d",
	106: "Throw Skill +%d",
	107: "Guard Skill +%d",
	108: "Evasion Skill +%d",
	109: "Shield Skill +%d",
	110: "Parry Skill +%d",
	111: "Divine Magic Skill +%d",
	112: "Healing Magic Skill +%d",
	113: "Enhancing Magic Skill +%d",
	114: "Enfeebling Magic Skill +%d",
	115: "Elemental Magic Skill +%d",
	116: "Dark Magic Skill +%d",
	117: "Summoning Magic Skill +%d",
	118: "Ninjutsu Magic Skill +%d",
	119: "Singing Magic Skill +%d",
	120: "String Magic Skill +%d",
	121: "Wind Magic Skill +%d",
	122: "Blue Magic Skill +%d",
	127: "Fishing Skill +%d",
	128: "Woodworking Skill +%d",
	129: "Smithing Skill +%d",
	130: "Goldsmithing Skill +%d",
	131: "Clothcraft Skill +%d",
	132: "Leathercraft Skill +%d",
	133: "Bonecraft Skill +%d",
	134: "Alchemy Skill +%d",
	135: "Cooking Skill +%d",
	136: "Synergy Skill +%d",
	137: "Riding Skill +%d",
	144: "Woodworking Success Rate +%d%%",
	145: "Smithing Success Rate +%d%%",
	146: "Goldsmithing Success Rate +%d%%",
	147: "Clothcraft Success Rate +%d%%",
	148: "Leathercraft Success Rate +%d%%",
	149: "Bonecraft Success Rate +%d%%",
	150: "Alchemy Success Rate +%d%%",
	151: "Cooking Success Rate +%d%%",
	160: "Damage Taken +%d%%",
	161: "Physical Damage Taken +%d%%",
	162: "Breath Damage Taken +%d%%",
	163: "Magic Damage Taken +%d%%",
	164: "Range Damage Taken +%d%%",
	387: "Uncapped Physical Damage Multiplier +%d",
	388: "Uncapped Breath Damage Multiplier +%d",
	389: "Uncapped Magic Damage Multiplier +%d",
	390: "Uncapped Range Damage Multiplier +%d",
	165: "Critical Hit Rate +%d",
	421: "Critical Hit Damage +%d",
	166: "Enemy Critical Hit Rate +%d",
	167: "Haste/Slow From Magic +%d",
	383: "Haste/Slow From Abilities +%d",
	384: "Haste/Slow From Equipment +%d",
	168: "+%d%% Spell Interruption Rate",
	169: "+%d%% Movement Speed",
	170: "Increases Fast Cast +%d",
	407: "Uncapped Fast Cast +%d",
	171: "Delay +%d",
	172: "Ranged Delay +%d",
	173: "Hand-to-Hand Delay +%d",
	174: "Skill Chain Bonus Damage +%d",
	175: "Skill Chain Bonus Damage +%d",
	311: "Increases Spell Damage +%d",
	176: "(Food) HPP +%d",
	177: "(Food) HP Cap +%d",
	178: "(Food) MPP +%d",
	179: "(Food) MP Cap +%d",
	180: "(Food) Attack +%d",
	181: "(Food) Attack Cap +%d",
	182: "(Food) Defense +%d",
	183: "(Food) Defense Cap +%d",
	184: "(Food) Accuracy +%d",
	185: "(Food) Accuracy Cap +%d",
	186: "(Food) Ranged Attack +%d",
	187: "(Food) Ranged Attack Cap +%d",
	188: "(Food) Ranged Accuracy +%d",
	189: "(Food) Ranged Accuracy Cap +%d",
	224: "Enhances \"Vermin Killer\" Effect +%d",
	225: "Enhances \"Bird Killer\" Effect +%d",
	226: "Enhances \"Amorph Killer\" Effect +%d",
	227: "Enhances \"Lizard Killer\" Effect +%d",
	228: "Enhances \"Aquan Killer\" Effect +%d",
	229: "Enhances \"Plantoid Killer\" Effect +%d",
	230: "Enhances \"Beast Killer\" Effect +%d",
	231: "Enhances \"Undead Killer\" Effect +%d",
	232: "Enhances \"Arcana Killer\" Effect +%d",
	233: "Enhances \"Dragon Killer\" Effect +%d",
	234: "Enhances \"Demon Killer\" Effect +%d",
	235: "Enhances \"Empty Killer\" Effect +%d",
	236: "Enhances \"Humanoid Killer\" Effect +%d",
	237: "Enhances \"Lumorian Killer\" Effect +%d",
	238: "Enhances \"Luminion Killer\" Effect +%d",
	240: "Enhances \"Resist Sleep\" Effect +%d",
	241: "Enhances \"Resist Poison\" Effect +%d",
	242: "Enhances \"Resist Paralyze\" Effect +%d",
	243: "Enhances \"Resist Blind\" Effect +%d",
	244: "Enhances \"Resist Silence\" Effect +%d",
	245: "Enhances \"Resist Virus\" Effect +%d",
	246: "Enhances \"Resist Petrify\" Effect +%d",
	247: "Enhances \"Resist Bind\" Effect +%d",
	248: "Enhances \"Resist Curse\" Effect +%d",
	249: "Enhances \"Resist Gravity\" Effect +%d",
	250: "Enhances \"Resist Slow\" Effect +%d",
	251: "Enhances \"Resist Stun\" Effect +%d",
	252: "Enhances \"Resist Charm\" Effect +%d",
	253: "Enhances \"Resist Amnesia\" Effect +%d",
	254: "(Placeholder) ModId: 0xFE, Value: %d",
	255: "Enhances \"Resist KO\" Effect +%d",
	257: "Paralyze Proc Rate +%d",
	258: "Mijin Gakure Death Modification %d",
	259: "Enhances \"Dual Wield\" Effect %d",
	288: "(WAR) Enhances \"Double Attack\" Effect %d",
	483: "(WAR) Enhances \"Warcry\" Effect %d",
	289: "(MNK) Enhances \"Subtle Blow\" Effect %d",
	291: "(MNK) Counter +%d",
	292: "(MNK) Kick +%d",
	428: "(MNK) Perfect Counter Attack +%d",
	429: "(MNK) Footwork Attack Bonus +%d",
	293: "(WHM) Afflatus Solace HP +%d",
	294: "(WHM) Afflatus Misery HP +%d",
	484: "(WHM) Enhances \"Auspice\" Effect %d",
	295: "(BLM) Enhances \"Clear Mind\" %d",
	296: "(BLM) Enhances \"Conserve MP\" %d",
	299: "(RDM) Blink Shadow Tracking %d",
	300: "(RDM) Stoneskin HP Pool %d",
	301: "(RDM) Damage Reduction %d",
	298: "(THF) Steal Success Chance %d",
	302: "(THF) Enhances \"Triple Attack\" Effect %d",
	303: "(THF) Treasure Hunter +%d",
	426: "(PLD) Converts Damage to MP %d",
	427: "(PLD) Reduce Enmity Decrease While Taking Physical Damage %d",
	485: "(PLD) Shield Mastery (TP Bonus) While Blocking %d",
	304: "(BST) Enhances \"Charm\" Effect (Tame) %d",
	360: "(BST) Extends Charm Time %d",
	364: "(BST) +%d%% Reward Bonus",
	391: "(BST) Enhances \"Charm\" Effect %d",
	503: "(BST) Increases Feral Howl Duration %d",
	433: "(BRD) Enhances \"Minne\" Effect %d",
	434: "(BRD) Enhances \"Minuet\" Effect %d",
	435: "(BRD) Enhances \"Paeon\" Effect %d",
	436: "(BRD) Enhances \"Requiem\" Effect %d",
	437: "(BRD) Enhances \"Threnody\" Effect %d",
	438: "(BRD) Enhances \"Madrigal\" Effect %d",
	439: "(BRD) Enhances \"Mambo\" Effect %d",
	440: "(BRD) Enhances \"Lullaby\" Effect %d",
	441: "(BRD) Enhances \"Etude\" Effect %d",
	442: "(BRD) Enhances \"Ballad\" Effect %d",
	443: "(BRD) Enhances \"March\" Effect %d",
	444: "(BRD) Enhances \"Finale\" Effect %d",
	445: "(BRD) Enhances \"Carol\" Effect %d",
	446: "(BRD) Enhances \"Mazurka\" Effect %d",
	447: "(BRD) Enhances \"Elegy\" Effect %d",
	448: "(BRD) Enhances \"Prelude\" Effect %d",
	449: "(BRD) Enhances \"Hymnus\" Effect %d",
	450: "(BRD) Enhances \"Virelai\" Effect %d",
	451: "(BRD) Enhances \"Scherzo\" Effect %d",
	452: "(BRD) Enhances \"All Songs\" Effect %d",
	453: "(BRD) Increases Maximum Songs +%d",
	454: "(BRD) Song Duration Bonus +%d",
	455: "(BRD) Song Spellcasting Time %d",
	305: "(RNG) Enhances \"Recycle\" Effect %d",
	365: "(RNG) Enhances \"Snapshot\" Effect %d",
	359: "(RNG) Enhances \"Rapid Shot\" Effect %d",
	340: "(RNG) Widescan %d",
	420: "(RNG) Increases Barrage Accuracy +%d",
	422: "(RNG) Enhances \"Double Shot\" Effect %d",
	423: "(RNG) Increases Snapshot While Velocity Shot Is Active %d",
	424: "(RNG) Increases Ranged Attack While Velocity Shot Is Active %d",
	425: "(RNG) Enhances \"Shadowbind\" Effect %d",
	306: "(SAM) Enhances \"Zanshin\" EFfect %d",
	307: "(NIN) Tracks Shadows %d",
	308: "(NIN) Ninja Tool Expertise %d",
	361: "(DRG) Increases TP Bonus While Jumping +%d",
	362: "(DRG) Attack Bonus While Jumping +%d%%",
	363: "(DRG) Increases Enmity Reduction While Jumping +%d",
	371: "(SMN) Avatar Perpetuation %d",
	372: "(SMN) Perpetuation Reduction (Weather) %d",
	373: "(SMN) Perpetuation Reduction (Day) %d",
	346: "(SMN) Perpetuation Reduction (Gear) %d",
	357: "(SMN) Blood Pact Delay Reduction %d",
	309: "(BLU) Tracks Blue Points %d",
	382: "(COR) Experience Bonus %d",
	316: "(COR) Tracks Total Reflect Damage %d",
	317: "(COR) Tracks Total Roll (Rogues) %d",
	318: "(COR) Tracks Total Roll (Gallants) %d",
	319: "(COR) Tracks Total Roll (Chaos) %d",
	320: "(COR) Tracks Total Roll (Beast) %d",
	321: "(COR) Tracks Total Roll (Choral) %d",
	322: "(COR) Tracks Total Roll (Hunters) %d",
	323: "(COR) Tracks Total Roll (Samurai) %d",
	324: "(COR) Tracks Total Roll (Ninja) %d",
	325: "(COR) Tracks Total Roll (Drachen) %d",
	326: "(COR) Tracks Total Roll (Evokers) %d",
	327: "(COR) Tracks Total Roll (Magus) %d",
	328: "(COR) Tracks Total Roll (Corsairs) %d",
	329: "(COR) Tracks Total Roll (Puppet) %d",
	330: "(COR) Tracks Total Roll (Dancers) %d",
	331: "(COR) Tracks Total Roll (Scholars) %d",
	332: "(COR) Tracks Number of Busts %d",
	411: "(COR) Quick Draw Damage %d",
	504: "(PUP) Puppet Maneuver Stat Bonus %d",
	505: "(PUP) Overload Threshold Bonus %d",
	333: "(DNC) Tracks Finishing Moves %d",
	490: "(DNC) Samba Duration Bonus %d",
	491: "(DNC) Waltz Potentcy Bonus %d",
	492: "(DNC) Jig Duration Bonus %d",
	493: "(DNC) Violent Flourish Accuracy Bonus %d",
	494: "(DNC) Bonus Finishing Moves From Steps %d",
	403: "(DNC) Bonus Accuracy For Steps %d",
	495: "(DNC) Spectral Jig Duration Modification %d",
	497: "(DNC) Waltz Recast Modifier %d",
	498: "(DNC) Samba Duration Bonus %d",
	393: "(SCH) MP Cost (Black Magic) %d",
	394: "(SCH) MP Cost (White Magic) %d",
	395: "(SCH) Cast Time (Black Magic) %d",
	396: "(SCH) Cast Time (White Magic) %d",
	397: "(SCH) Recast Time (Black Magic) %d",
	398: "(SCH) Recast Time (White Magic) %d",
	399: "(SCH) Celerity/Alacrity Effect Bonus %d",
	334: "(SCH) Enhances \"Light Arts\" Effect %d",
	335: "(SCH) Enhances \"Dark Arts\" Effect %d",
	336: "(SCH) Light Arts Skill +%d",
	337: "(SCH) Dark Arts Skill +%d",
	338: "(SCH) Regen Effect %d",
	339: "(SCH) Regen Duration %d",
	478: "(SCH) Helix Effect %d",
	477: "(SCH) Helix Duration %d",
	400: "(SCH) Stormsurge Effect %d",
	401: "(SCH) Sublimation Bonus %d",
	489: "(SCH) Grimoire: Reduces Spellcasting Time %d",
	341: "Tracks Active Enspell %d",
	343: "Tracks Enspell Base Damage %d",
	432: "Tracks Enspell Damage Bonus %d",
	342: "Tracks Active Spike Spell %d",
	344: "Tracks Spike Base Damage",
	345: "TP Bonus %d",
	347: "Tracks Fire Element Affinity %d",
	348: "Tracks Earth Element Affinity %d",
	349: "Tracks Water Element Affinity %d",
	350: "Tracks Ice Element Affinity %d",
	351: "Tracks Lightning Element Affinity %d",
	352: "Tracks Wind Element Affinity %d",
	353: "Tracks Light Element Affinity %d",
	354: "Tracks Dark Element Affinity %d",
	355: "Adds Weaponskill %d",
	356: "Adds Weaponskill In Dynamis %d",
	358: "Stealth %d",
	366: "Bonus Damage Rating (Main) %d",
	367: "Bonus Damage Rating (Sub) %d",
	368: "Regain %d",
	406: "Regain (Down / Plague) %d",
	369: "Refresh %d",
	405: "Refresh (Down / Plague) %d",
	370: "Regen %d",
	404: "Regen (Down / Poison) %d",
	374: "%d%% Cure Potency",
	375: "%d%% Cure Potency Received",
	376: "Bonus Damage Rating (Ranged) %d",
	377: "Weapon Rank (Main) %d",
	378: "Weapon Rank (Sub) %d",
	379: "Weapon Rank (Ranged) %d",
	380: "Additional Delay +%d%%",
	381: "Additional Delay (Ranged) +%d%%",
	385: "Enhances \"Shield Bash\" Effect %d",
	386: "Increases \"Kick\" Damage %d",
	392: "Enhances \"Weapon Bash\" Effect %d",
	402: "Enhances \"Wyvern Breath\" Effect %d",
	408: "+%d%% Double Attack Damage Chance",
	409: "+%d%% Triple Attack Damage Chance",
	410: "+%d%% Zanshin Double Damage Chance",
	479: "+%d%% Rapid Shot Double Damage Chance",
	480: "+%d%% Chance To Absorb Damage",
	481: "+%d%% Chance To Land Extra Attack (Dual Wield)",
	482: "+%d%% Chance To Land Extra Kick Attack",
	415: "+%d%% Double Damage Chance (Samba)",
	416: "+%d%% Chance To NULL Physical Damage",
	417: "+%d%% Chance To Triple Damage (Quick Draw)",
	418: "+%d%% Chance Bar Spell NULL Damage Of Same Element",
	419: "+%d%% Chance To Instant Cast Spell (SCH Arts)",
	430: "+%d%% Quadruple Attack Chance",
	456: "Reraise",
	457: "Reraise II",
	458: "Reraise III",
	459: "+%d%% Chance To Absorb Fire Damage",
	460: "+%d%% Chance To Absorb Earth Damage",
	461: "+%d%% Chance To Absorb Water Damage",
	462: "+%d%% Chance To Absorb Wind Damage",
	463: "+%d%% Chance To Absorb Ice Damage",
	464: "+%d%% Chance To Absorb Lightning Damage",
	465: "+%d%% Chance To Absorb Light Damage",
	466: "+%d%% Chance To Absorb Dark Damage",
	467: "+%d%% Chance To NULL Fire Damage",
	468: "+%d%% Chance To NULL Earth Damage",
	469: "+%d%% Chance To NULL Water Damage",
	470: "+%d%% Chance To NULL Wind Damage",
	471: "+%d%% Chance To NULL Ice Damage",
	472: "+%d%% Chance To NULL Lightning Damage",
	473: "+%d%% Chance To NULL Light Damage",
	474: "+%d%% Chance To NULL Dark Damage",
	475: "Magic Absorb %d",
	476: "Magic NULL %d",
	512: "Physical Absorb %d",
	516: "Converts %d%% of Damage Taken To MP",
	431: "Additional Effect %d",
	499: "Spikes Effect (Type) %d",
	500: "Spikes Effect (Damage) %d",
	501: "Spikes Effect (Chance) %d",
	496: "GoV Clears Bonus %d",
	506: "Proc Rate (Occ. Extra Damage) %d",
	507: "Multiplier (Occ. Extra Damage) %d",
	412: "Eat Raw Fish",
	413: "Eat Raw Meat",
	310: "Enhances Cursna: %d",
	414: "Increases Retaliation damage: %d",
	508: "Augments Third Eye: %d",
	509: "Improves clamming results: %d",
	510: "Reduces clamming incidents: %d",
	511: "Increases chocobo riding time: %d",
	513: "Improves harvesting results: %d",
	514: "Improves logging results: %d",
	515: "Improves mining results: %d",
	517: "Egghelm: %d",
}

// ItemModText renders a modifier as "(id): text". Unknown ids render as
// "Unknown Mod (id) value".
func ItemModText(modID, value int) string {
	f, ok := itemModFormats[modID]
	if !ok {
		return fmt.Sprintf("Unknown Mod (%d) %d", modID, value)
	}
	var text string
	if strings.Contains(f, "%d") {
		text = fmt.Sprintf(f, value)
	} else {
		text = strings.ReplaceAll(f, "%%", "%")
	}
	return fmt.Sprintf("(%d): %s", modID, strings.Replace(text, "+-", "-", 1))
}
