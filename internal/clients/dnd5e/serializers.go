package dnd5e

import (
	"log"
	"strconv"
	"strings"

	api "github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/marvelous-hawke/runeforge/internal/domain/items"
)

func apiEquipmentInterfaceToItem(input api.EquipmentInterface) *items.Item {
	if input == nil {
		return nil
	}

	switch equip := input.(type) {
	case *apiEntities.Weapon:
		return apiWeaponToItem(equip)
	case *apiEntities.Armor:
		return apiArmorToItem(equip)
	case *apiEntities.Equipment:
		return apiEquipmentToItem(equip)
	default:
		// Silently handle unknown equipment types
		return nil
	}
}

func apiWeaponToItem(input *apiEntities.Weapon) *items.Item {
	item := &items.Item{
		ID:     input.Key,
		Name:   input.Name,
		Class:  items.ClassWeapon,
		Rarity: "common",
		Attack: &items.AttackProfile{},
	}

	if part := apiDamageToPart(input.Damage); part != nil {
		item.Attack.Parts = append(item.Attack.Parts, *part)
	}

	return item
}

func apiArmorToItem(input *apiEntities.Armor) *items.Item {
	item := &items.Item{
		ID:     input.Key,
		Name:   input.Name,
		Class:  items.ClassEquipment,
		Rarity: "common",
	}

	switch strings.ToLower(input.ArmorCategory) {
	case "light":
		item.ArmorType = items.ArmorTypeLight
	case "medium":
		item.ArmorType = items.ArmorTypeMedium
	case "heavy":
		item.ArmorType = items.ArmorTypeHeavy
	case "shield":
		item.ArmorType = items.ArmorTypeShield
		item.Properties = append(item.Properties, items.PropertyShield)
	}

	if input.ArmorClass != nil {
		item.ArmorValue = input.ArmorClass.Base
	}

	return item
}

func apiEquipmentToItem(input *apiEntities.Equipment) *items.Item {
	item := &items.Item{
		ID:     input.Key,
		Name:   input.Name,
		Class:  items.ClassEquipment,
		Rarity: "common",
	}

	// The SRD has no focus flag; recognize the spellcasting foci by name.
	lower := strings.ToLower(input.Name)
	if strings.Contains(lower, "wand") || strings.Contains(lower, "rod") ||
		strings.Contains(lower, "orb") || strings.Contains(lower, "crystal") ||
		strings.Contains(lower, "staff") || strings.Contains(lower, "totem") {
		item.Properties = append(item.Properties, items.PropertyFocus)
	}

	return item
}

func apiDamageToPart(input *apiEntities.Damage) *items.DamagePart {
	if input == nil {
		return nil
	}

	diceParts := strings.Split(input.DamageDice, "d")
	if len(diceParts) != 2 {
		log.Printf("Unknown dice format %s", input.DamageDice)
		return nil
	}

	diceCount, err := strconv.Atoi(diceParts[0])
	if err != nil {
		log.Printf("Unknown dice format %s", input.DamageDice)
		return nil
	}

	diceValue, err := strconv.Atoi(diceParts[1])
	if err != nil {
		log.Printf("Unknown dice format %s", input.DamageDice)
		return nil
	}

	part := &items.DamagePart{
		Number: diceCount,
		Die:    diceValue,
	}
	if input.DamageType != nil {
		part.Type = input.DamageType.Key
	}

	return part
}
