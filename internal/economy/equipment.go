package economy

import (
	"fmt"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

// Level is one rung of an equipment ladder. StatBoost is a fractional
// performance bonus, except for decoration where it is flat max energy.
type Level struct {
	Level       int     `json:"level"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	StatBoost   float64 `json:"statBoost"`
}

type Item struct {
	Slot   model.EquipmentSlot `json:"slot"`
	Name   string              `json:"name"`
	Levels []Level             `json:"levels"`
}

var Items = []Item{
	{
		Slot: model.SlotCamera,
		Name: "Camera",
		Levels: []Level{
			{Level: 1, Cost: 0, Description: "Basic Phone", StatBoost: 0},
			{Level: 2, Cost: 50, Description: "HD Webcam", StatBoost: 0.05},
			{Level: 3, Cost: 500, Description: "DSLR Camera", StatBoost: 0.10},
			{Level: 4, Cost: 1000, Description: "Professional Camera", StatBoost: 0.15},
			{Level: 5, Cost: 5000, Description: "Cinema Camera", StatBoost: 0.20},
		},
	},
	{
		Slot: model.SlotMicrophone,
		Name: "Microphone",
		Levels: []Level{
			{Level: 1, Cost: 0, Description: "Built-in Microphone", StatBoost: 0},
			{Level: 2, Cost: 50, Description: "USB Microphone", StatBoost: 0.03},
			{Level: 3, Cost: 500, Description: "Condenser Microphone", StatBoost: 0.07},
			{Level: 4, Cost: 1000, Description: "Professional Microphone", StatBoost: 0.10},
			{Level: 5, Cost: 5000, Description: "Recording Studio", StatBoost: 0.15},
		},
	},
	{
		Slot: model.SlotEditingSoftware,
		Name: "Editing Software",
		Levels: []Level{
			{Level: 1, Cost: 0, Description: "Free Basic Editor", StatBoost: 0},
			{Level: 2, Cost: 100, Description: "Amateur Editor", StatBoost: 0.05},
			{Level: 3, Cost: 750, Description: "Semi-Pro Editor", StatBoost: 0.10},
			{Level: 4, Cost: 1500, Description: "Professional Editor", StatBoost: 0.15},
			{Level: 5, Cost: 7000, Description: "Hollywood Editing Suite", StatBoost: 0.20},
		},
	},
	{
		Slot: model.SlotDecoration,
		Name: "Room Decoration",
		Levels: []Level{
			{Level: 1, Cost: 0, Description: "Empty Wall", StatBoost: 0},
			{Level: 2, Cost: 30, Description: "Generic Poster", StatBoost: 10},
			{Level: 3, Cost: 200, Description: "LED Lights and Shelf", StatBoost: 20},
			{Level: 4, Cost: 800, Description: "Basic Themed Set", StatBoost: 30},
			{Level: 5, Cost: 3000, Description: "Custom Professional Studio", StatBoost: 50},
		},
	},
}

func Ladder(slot model.EquipmentSlot) (Item, bool) {
	for _, it := range Items {
		if it.Slot == slot {
			return it, true
		}
	}
	return Item{}, false
}

// LevelDetail returns the ladder entry for slot at level.
func LevelDetail(slot model.EquipmentSlot, level int) (Level, bool) {
	it, ok := Ladder(slot)
	if !ok {
		return Level{}, false
	}
	for _, l := range it.Levels {
		if l.Level == level {
			return l, true
		}
	}
	return Level{}, false
}

// NextLevel returns the rung after level, or false at the top of the ladder.
func NextLevel(slot model.EquipmentSlot, level int) (Level, bool) {
	return LevelDetail(slot, level+1)
}

func statBoost(slot model.EquipmentSlot, level int) float64 {
	l, ok := LevelDetail(slot, level)
	if !ok {
		return 0
	}
	return l.StatBoost
}

// QualityMultiplier sums the camera, microphone and editing boosts.
// Decoration never counts toward video quality.
func QualityMultiplier(eq model.Equipment) float64 {
	return statBoost(model.SlotCamera, eq.Camera) +
		statBoost(model.SlotMicrophone, eq.Microphone) +
		statBoost(model.SlotEditingSoftware, eq.EditingSoftware)
}

func EditingBoost(eq model.Equipment) float64 {
	return statBoost(model.SlotEditingSoftware, eq.EditingSoftware)
}

type UpgradeResult struct {
	Slot           model.EquipmentSlot `json:"slot"`
	FromLevel      int                 `json:"fromLevel"`
	ToLevel        int                 `json:"toLevel"`
	Cost           float64             `json:"cost"`
	MaxEnergyDelta int                 `json:"maxEnergyDelta,omitempty"`
}

// Upgrade buys the next level of slot. Nothing changes on error.
func Upgrade(ch *model.Channel, slot model.EquipmentSlot) (UpgradeResult, error) {
	if !slot.Valid() {
		return UpgradeResult{}, fmt.Errorf("%w: %q", model.ErrUnknownSlot, slot)
	}
	cur := ch.Equipment.Level(slot)
	if cur < model.MinEquipmentLevel {
		cur = model.MinEquipmentLevel
	}
	next, ok := NextLevel(slot, cur)
	if !ok {
		return UpgradeResult{}, fmt.Errorf("%s: %w", slot, model.ErrMaxLevel)
	}
	if ch.Money < next.Cost {
		return UpgradeResult{}, fmt.Errorf("%s level %d costs $%.2f: %w", slot, next.Level, next.Cost, model.ErrInsufficientFunds)
	}

	res := UpgradeResult{Slot: slot, FromLevel: cur, ToLevel: next.Level, Cost: next.Cost}
	ch.Money = model.Round2(ch.Money - next.Cost)
	ch.Equipment.SetLevel(slot, next.Level)

	if slot == model.SlotDecoration {
		delta := int(next.StatBoost - statBoost(slot, cur))
		ch.MaxEnergy += delta
		ch.ClampEnergy()
		res.MaxEnergyDelta = delta
	}
	return res, nil
}
