package structures

import "tilescape/internal/core"

const (
	colorTrunk     core.Color = 0x8B4513
	colorLeaves    core.Color = 0x228B22
	colorHouseWall core.Color = 0xD2B48C
	colorRoof      core.Color = 0x8B0000
	colorDoor      core.Color = 0x654321
	colorWindow    core.Color = 0x87CEFA
	colorStone     core.Color = 0x9E9E9E
	colorStoneDark core.Color = 0x7A7A7A
	colorTowerRoof core.Color = 0x3B3B6D
	colorGate      core.Color = 0x4A3520
	colorArmor     core.Color = 0xC0C0C0
	colorTabard    core.Color = 0x1E3A8A
	colorSkin      core.Color = 0xF1C27D
	colorPlume     core.Color = 0xB22222
	colorLeather   core.Color = 0x5C4033
	colorCloud     core.Color = 0xF5F5F5
	colorFlame     core.Color = 0xFF6A00
)
