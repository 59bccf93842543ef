package sector

// Sector is the content of one sector file: its tiles in source order.
type Sector struct {
	Tiles []*Tile `json:"tiles"`
}

func New() *Sector {
	return &Sector{Tiles: []*Tile{}}
}

// Tile is one map cell at an offset relative to the sector origin.
//
// Optional fields are nil when the source did not mention them. Content is
// nil when the tile has no Content token and empty (not nil) when it has an
// empty one.
type Tile struct {
	OffsetX        int     `json:"offset_x"`
	OffsetY        int     `json:"offset_y"`
	Refresh        *bool   `json:"refresh,omitzero"`
	ProtectionZone *bool   `json:"protection_zone,omitzero"`
	NoLogout       *bool   `json:"no_logout,omitzero"`
	Content        []*Item `json:"content,omitzero"`
}

// Item is a placed object. Containers hold further items in Content.
type Item struct {
	ID                     int     `json:"id"`
	Amount                 *int    `json:"amount,omitzero"`
	ChestQuestNumber       *int    `json:"chest_quest_number,omitzero"`
	KeyNumber              *int    `json:"key_number,omitzero"`
	KeyholeNumber          *int    `json:"keyhole_number,omitzero"`
	Level                  *int    `json:"level,omitzero"`
	DoorLevel              *int    `json:"door_level,omitzero"`
	DoorQuestNumber        *int    `json:"door_quest_number,omitzero"`
	DoorQuestValue         *int    `json:"door_quest_value,omitzero"`
	Charges                *int    `json:"charges,omitzero"`
	Text                   *string `json:"text,omitzero"`
	Editor                 *string `json:"editor,omitzero"`
	ContainerLiquidType    *int    `json:"container_liquid_type,omitzero"`
	PoolLiquidType         *int    `json:"pool_liquid_type,omitzero"`
	AbsTeleportDestination *int    `json:"abs_teleport_destination,omitzero"`
	Responsible            *int    `json:"responsible,omitzero"`
	RemainingExpireTime    *int    `json:"remaining_expire_time,omitzero"`
	SavedExpireTime        *int    `json:"saved_expire_time,omitzero"`
	RemainingUses          *int    `json:"remaining_uses,omitzero"`
	Content                []*Item `json:"content,omitzero"`
}

func NewItem(id int) *Item {
	return &Item{ID: id}
}

func NewTile(x, y int) *Tile {
	return &Tile{OffsetX: x, OffsetY: y}
}
