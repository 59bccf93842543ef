package keyword

import "github.com/signadot/sector-format/sector"

var tile = NewTable(
	&Keyword{Name: "Refresh", Kind: Flag, Field: sector.FieldRefresh},
	&Keyword{Name: "NoLogout", Kind: Flag, Field: sector.FieldNoLogout},
	&Keyword{Name: "ProtectionZone", Aliases: []string{"Protection Zone"}, Kind: Flag, Field: sector.FieldProtectionZone},
	&Keyword{Name: "Content", Kind: Content, Field: sector.FieldContent},
)

var item = NewTable(
	&Keyword{Name: "Amount", Kind: Int, Field: sector.FieldAmount},
	&Keyword{Name: "AbsTeleportDestination", Kind: Int, Field: sector.FieldAbsTeleportDestination},
	&Keyword{Name: "KeyNumber", Kind: Int, Field: sector.FieldKeyNumber},
	&Keyword{Name: "KeyholeNumber", Kind: Int, Field: sector.FieldKeyholeNumber},
	&Keyword{Name: "DoorLevel", Kind: Int, Field: sector.FieldDoorLevel},
	&Keyword{Name: "DoorQuestNumber", Kind: Int, Field: sector.FieldDoorQuestNumber},
	&Keyword{Name: "DoorQuestValue", Kind: Int, Field: sector.FieldDoorQuestValue},
	&Keyword{Name: "Responsible", Kind: Int, Field: sector.FieldResponsible},
	&Keyword{Name: "RemainingExpireTime", Kind: Int, Field: sector.FieldRemainingExpireTime},
	&Keyword{Name: "RemainingUses", Kind: Int, Field: sector.FieldRemainingUses},
	&Keyword{Name: "Level", Kind: Int, Field: sector.FieldLevel},
	&Keyword{Name: "Editor", Kind: String, Field: sector.FieldEditor},
	&Keyword{Name: "String", Kind: String, Field: sector.FieldText},
	&Keyword{Name: "SavedExpireTime", Kind: Int, Field: sector.FieldSavedExpireTime},
	&Keyword{Name: "PoolLiquidType", Kind: Int, Field: sector.FieldPoolLiquidType},
	&Keyword{Name: "Charges", Kind: Int, Field: sector.FieldCharges},
	&Keyword{Name: "ChestQuestNumber", Kind: Int, Field: sector.FieldChestQuestNumber},
	&Keyword{Name: "ContainerLiquidType", Kind: Int, Field: sector.FieldContainerLiquidType},
	&Keyword{Name: "Content", Kind: Content, Field: sector.FieldContent},
)

// Tile returns the table of tokens allowed after a tile header.
func Tile() *Table { return tile }

// Item returns the table of item attribute tokens.
func Item() *Table { return item }
