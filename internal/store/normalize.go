package store

import (
	"sort"

	"github.com/thedidscuf/GameYoutube/internal/model"
)

// normalizeChannel fills fields that older saves may lack.
func normalizeChannel(ch model.Channel) model.Channel {
	if ch.Achievements == nil {
		ch.Achievements = []string{}
	}
	if ch.Videos == nil {
		ch.Videos = []model.Video{}
	}
	if ch.MaxEnergy <= 0 {
		ch.MaxEnergy = model.StartingMaxEnergy
	}
	if ch.Day <= 0 {
		ch.Day = model.StartingDay
	}
	for _, s := range model.EquipmentSlots {
		if ch.Equipment.Level(s) < model.MinEquipmentLevel {
			ch.Equipment.SetLevel(s, model.MinEquipmentLevel)
		}
	}
	ch.ClampEnergy()
	return ch
}

func sortChannels(chs []model.Channel) {
	sort.SliceStable(chs, func(i, j int) bool {
		if !chs[i].CreatedAt.Equal(chs[j].CreatedAt) {
			return chs[i].CreatedAt.Before(chs[j].CreatedAt)
		}
		return chs[i].ID < chs[j].ID
	})
}
