package model

type EquipmentSlot string

const (
	SlotCamera          EquipmentSlot = "camera"
	SlotMicrophone      EquipmentSlot = "microphone"
	SlotEditingSoftware EquipmentSlot = "editingSoftware"
	SlotDecoration      EquipmentSlot = "decoration"
)

const (
	MinEquipmentLevel = 1
	MaxEquipmentLevel = 5
)

var EquipmentSlots = []EquipmentSlot{SlotCamera, SlotMicrophone, SlotEditingSoftware, SlotDecoration}

func (s EquipmentSlot) Valid() bool {
	switch s {
	case SlotCamera, SlotMicrophone, SlotEditingSoftware, SlotDecoration:
		return true
	default:
		return false
	}
}

// Equipment holds the current level of every slot.
type Equipment struct {
	Camera          int `json:"camera"`
	Microphone      int `json:"microphone"`
	EditingSoftware int `json:"editingSoftware"`
	Decoration      int `json:"decoration"`
}

func BasicEquipment() Equipment {
	return Equipment{Camera: 1, Microphone: 1, EditingSoftware: 1, Decoration: 1}
}

func (e Equipment) Level(s EquipmentSlot) int {
	switch s {
	case SlotCamera:
		return e.Camera
	case SlotMicrophone:
		return e.Microphone
	case SlotEditingSoftware:
		return e.EditingSoftware
	case SlotDecoration:
		return e.Decoration
	}
	return 0
}

func (e *Equipment) SetLevel(s EquipmentSlot, level int) {
	switch s {
	case SlotCamera:
		e.Camera = level
	case SlotMicrophone:
		e.Microphone = level
	case SlotEditingSoftware:
		e.EditingSoftware = level
	case SlotDecoration:
		e.Decoration = level
	}
}
