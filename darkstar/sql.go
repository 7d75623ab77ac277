package darkstar

import "fmt"

// itemNameExpr picks the first name found among the item tables joined
// by itemNameJoins.
const itemNameExpr = "COALESCE(ita.name, itb.name, itf.name, itp.name, itw.name, '') AS itemname"

// itemNameJoins joins the named item tables on the given item id column.
func itemNameJoins(col string) string {
	return fmt.Sprintf(`LEFT JOIN item_armor AS ita ON %[1]s = ita.itemid
		LEFT JOIN item_basic AS itb ON %[1]s = itb.itemid
		LEFT JOIN item_furnishing AS itf ON %[1]s = itf.itemid
		LEFT JOIN item_puppet AS itp ON %[1]s = itp.itemid
		LEFT JOIN item_weapon AS itw ON %[1]s = itw.itemid`, col)
}

// itemTables lists every table holding item names, in merge order.
var itemTables = []string{"item_armor", "item_basic", "item_furnishing", "item_puppet", "item_usable", "item_weapon"}

// dropTables are the normal and scripted mob drop lists.
var dropTables = []string{"mob_droplist", "mob_droplist_scripted"}

const gmHiddenExpr = "(SELECT COUNT(*) FROM char_vars AS cv WHERE cv.charid = c.charid AND cv.varname LIKE '%gmhidden%')"
