package objects

import "strings"

// Canonical entity class names. Many types accumulated two or three
// spellings over the format's history; everything downstream sees only the
// canonical id so validation rules apply uniformly.

var buildingAliases = map[string]string{
	"buildingtoolstore_c":        "BuildingToolStore_C",
	"toolstore":                  "BuildingToolStore_C",
	"tool store":                 "BuildingToolStore_C",
	"buildingteleportpad_c":      "BuildingTeleportPad_C",
	"teleportpad":                "BuildingTeleportPad_C",
	"buildingpowerstation_c":     "BuildingPowerStation_C",
	"powerstation":               "BuildingPowerStation_C",
	"buildingsupportstation_c":   "BuildingSupportStation_C",
	"supportstation":             "BuildingSupportStation_C",
	"buildingupgradestation_c":   "BuildingUpgradeStation_C",
	"upgradestation":             "BuildingUpgradeStation_C",
	"buildinggeologicalcenter_c": "BuildingGeologicalCenter_C",
	"geologicalcenter":           "BuildingGeologicalCenter_C",
	"geodome":                    "BuildingGeologicalCenter_C",
	"buildingorerefinery_c":      "BuildingOreRefinery_C",
	"orerefinery":                "BuildingOreRefinery_C",
	"buildingmininglaser_c":      "BuildingMiningLaser_C",
	"mininglaser":                "BuildingMiningLaser_C",
	"buildingsuperteleport_c":    "BuildingSuperTeleport_C",
	"superteleport":              "BuildingSuperTeleport_C",
	"buildingdocks_c":            "BuildingDocks_C",
	"docks":                      "BuildingDocks_C",
	"buildingcanteen_c":          "BuildingCanteen_C",
	"canteen":                    "BuildingCanteen_C",
	"buildingelectricfence_c":    "BuildingElectricFence_C",
	"electricfence":              "BuildingElectricFence_C",
	"fence":                      "BuildingElectricFence_C",
}

var vehicleAliases = map[string]string{
	"vehiclehoverscout_c":          "VehicleHoverScout_C",
	"hoverscout":                   "VehicleHoverScout_C",
	"vehiclesmalldigger_c":         "VehicleSmallDigger_C",
	"smalldigger":                  "VehicleSmallDigger_C",
	"vehiclesmalltransporttruck_c": "VehicleSmallTransportTruck_C",
	"smalltransporttruck":          "VehicleSmallTransportTruck_C",
	"smalltruck":                   "VehicleSmallTransportTruck_C",
	"vehiclerapidrider_c":          "VehicleRapidRider_C",
	"rapidrider":                   "VehicleRapidRider_C",
	"vehiclegranitegrinder_c":      "VehicleGraniteGrinder_C",
	"granitegrinder":               "VehicleGraniteGrinder_C",
	"vehiclechromecrusher_c":       "VehicleChromeCrusher_C",
	"chromecrusher":                "VehicleChromeCrusher_C",
	"vehicleloaderdozer_c":         "VehicleLoaderDozer_C",
	"loaderdozer":                  "VehicleLoaderDozer_C",
	"vehiclecargocarrier_c":        "VehicleCargoCarrier_C",
	"cargocarrier":                 "VehicleCargoCarrier_C",
	"vehicletunnelscout_c":         "VehicleTunnelScout_C",
	"tunnelscout":                  "VehicleTunnelScout_C",
	"vehicletunneltransport_c":     "VehicleTunnelTransport_C",
	"tunneltransport":              "VehicleTunnelTransport_C",
}

var creatureAliases = map[string]string{
	"creaturerockmonster_c": "CreatureRockMonster_C",
	"rockmonster":           "CreatureRockMonster_C",
	"creatureicemonster_c":  "CreatureIceMonster_C",
	"icemonster":            "CreatureIceMonster_C",
	"creaturelavamonster_c": "CreatureLavaMonster_C",
	"lavamonster":           "CreatureLavaMonster_C",
	"creaturesmallspider_c": "CreatureSmallSpider_C",
	"smallspider":           "CreatureSmallSpider_C",
	"spider":                "CreatureSmallSpider_C",
	"creatureslimyslug_c":   "CreatureSlimySlug_C",
	"slimyslug":             "CreatureSlimySlug_C",
	"slug":                  "CreatureSlimySlug_C",
	"creaturebat_c":         "CreatureBat_C",
	"bat":                   "CreatureBat_C",
}

var minerAliases = map[string]string{
	"miner":       "Miner",
	"rockraider":  "Miner",
	"pilot_c":     "Miner",
	"vlpminers_c": "Miner",
}

// Canonicalize resolves a type spelling for the given section to its
// canonical id. The bool is false when the spelling is unknown; callers then
// keep the raw spelling so downstream rules can still key off something.
func Canonicalize(sectionName, typeName string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(typeName))
	var canonical string
	var ok bool
	switch sectionName {
	case "buildings":
		canonical, ok = buildingAliases[key]
	case "vehicles":
		canonical, ok = vehicleAliases[key]
	case "creatures":
		canonical, ok = creatureAliases[key]
	case "miners":
		canonical, ok = minerAliases[key]
	}
	return canonical, ok
}

// IsKnownBuildingType reports whether the spelling names any building.
func IsKnownBuildingType(typeName string) bool {
	_, ok := buildingAliases[strings.ToLower(strings.TrimSpace(typeName))]
	return ok
}

// IsKnownCreatureType reports whether the spelling names any creature.
func IsKnownCreatureType(typeName string) bool {
	_, ok := creatureAliases[strings.ToLower(strings.TrimSpace(typeName))]
	return ok
}
