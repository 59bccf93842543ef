package sector

import "fmt"

// Field names an optional attribute of a Tile or an Item.
type Field int

const (
	FieldNone Field = iota

	// tile flags
	FieldRefresh
	FieldProtectionZone
	FieldNoLogout

	// item attributes
	FieldAmount
	FieldChestQuestNumber
	FieldKeyNumber
	FieldKeyholeNumber
	FieldLevel
	FieldDoorLevel
	FieldDoorQuestNumber
	FieldDoorQuestValue
	FieldCharges
	FieldText
	FieldEditor
	FieldContainerLiquidType
	FieldPoolLiquidType
	FieldAbsTeleportDestination
	FieldResponsible
	FieldRemainingExpireTime
	FieldSavedExpireTime
	FieldRemainingUses

	// tiles and items
	FieldContent
)

var fieldNames = map[Field]string{
	FieldRefresh:                "refresh",
	FieldProtectionZone:         "protection_zone",
	FieldNoLogout:               "no_logout",
	FieldAmount:                 "amount",
	FieldChestQuestNumber:       "chest_quest_number",
	FieldKeyNumber:              "key_number",
	FieldKeyholeNumber:          "keyhole_number",
	FieldLevel:                  "level",
	FieldDoorLevel:              "door_level",
	FieldDoorQuestNumber:        "door_quest_number",
	FieldDoorQuestValue:         "door_quest_value",
	FieldCharges:                "charges",
	FieldText:                   "text",
	FieldEditor:                 "editor",
	FieldContainerLiquidType:    "container_liquid_type",
	FieldPoolLiquidType:         "pool_liquid_type",
	FieldAbsTeleportDestination: "abs_teleport_destination",
	FieldResponsible:            "responsible",
	FieldRemainingExpireTime:    "remaining_expire_time",
	FieldSavedExpireTime:        "saved_expire_time",
	FieldRemainingUses:          "remaining_uses",
	FieldContent:                "content",
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (t *Tile) SetFlag(f Field) error {
	v := true
	switch f {
	case FieldRefresh:
		t.Refresh = &v
	case FieldProtectionZone:
		t.ProtectionZone = &v
	case FieldNoLogout:
		t.NoLogout = &v
	default:
		return fmt.Errorf("%s is not a tile flag", f)
	}
	return nil
}

func (it *Item) intField(f Field) **int {
	switch f {
	case FieldAmount:
		return &it.Amount
	case FieldChestQuestNumber:
		return &it.ChestQuestNumber
	case FieldKeyNumber:
		return &it.KeyNumber
	case FieldKeyholeNumber:
		return &it.KeyholeNumber
	case FieldLevel:
		return &it.Level
	case FieldDoorLevel:
		return &it.DoorLevel
	case FieldDoorQuestNumber:
		return &it.DoorQuestNumber
	case FieldDoorQuestValue:
		return &it.DoorQuestValue
	case FieldCharges:
		return &it.Charges
	case FieldContainerLiquidType:
		return &it.ContainerLiquidType
	case FieldPoolLiquidType:
		return &it.PoolLiquidType
	case FieldAbsTeleportDestination:
		return &it.AbsTeleportDestination
	case FieldResponsible:
		return &it.Responsible
	case FieldRemainingExpireTime:
		return &it.RemainingExpireTime
	case FieldSavedExpireTime:
		return &it.SavedExpireTime
	case FieldRemainingUses:
		return &it.RemainingUses
	}
	return nil
}

func (it *Item) stringField(f Field) **string {
	switch f {
	case FieldText:
		return &it.Text
	case FieldEditor:
		return &it.Editor
	}
	return nil
}

// SetInt sets an integer attribute. A repeated attribute overwrites the
// earlier value.
func (it *Item) SetInt(f Field, v int) error {
	p := it.intField(f)
	if p == nil {
		return fmt.Errorf("%s is not an integer item attribute", f)
	}
	*p = &v
	return nil
}

func (it *Item) SetString(f Field, v string) error {
	p := it.stringField(f)
	if p == nil {
		return fmt.Errorf("%s is not a string item attribute", f)
	}
	*p = &v
	return nil
}

// IntAttr returns an integer attribute and whether it is set.
func (it *Item) IntAttr(f Field) (int, bool) {
	p := it.intField(f)
	if p == nil || *p == nil {
		return 0, false
	}
	return **p, true
}

func (it *Item) StringAttr(f Field) (string, bool) {
	p := it.stringField(f)
	if p == nil || *p == nil {
		return "", false
	}
	return **p, true
}
