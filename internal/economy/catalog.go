package economy

import "github.com/thedidscuf/GameYoutube/internal/model"

// Genre is a top-level video category and the sub-genres it offers.
type Genre struct {
	Name      string   `json:"name"`
	SubGenres []string `json:"subGenres"`
}

var Genres = []Genre{
	{Name: "Gaming", SubGenres: []string{"Fortnite", "Roblox", "Minecraft", "League of Legends", "Valorant", "Other"}},
	{Name: "Music", SubGenres: []string{"Classical", "Dubstep", "Rap", "Pop", "Rock", "Cover", "Original", "Other"}},
	{Name: "Vlogs", SubGenres: []string{"Daily", "Travel", "Events", "Opinion", "Other"}},
	{Name: "Education", SubGenres: []string{"Tutorials", "Science", "History", "Languages", "Other"}},
	{Name: "Comedy", SubGenres: []string{"Sketches", "Stand-up", "Parodies", "Pranks", "Other"}},
	{Name: "Technology", SubGenres: []string{"Reviews", "Software Tutorials", "Tech News", "Gadgets", "Other"}},
	{Name: "Beauty", SubGenres: []string{"Makeup", "Skincare", "Fashion", "Hauls", "Other"}},
	{Name: "Cooking", SubGenres: []string{"Recipes", "Baking", "Fast Food", "International Cuisine", "Other"}},
}

// RecordingMethod pairs a method with its view multiplier.
type RecordingMethod struct {
	Method     model.RecordingMethod `json:"method"`
	Multiplier float64               `json:"multiplier"`
}

var RecordingMethods = []RecordingMethod{
	{Method: model.RecordingLive, Multiplier: 1.0},
	{Method: model.RecordingRecorded, Multiplier: 1.2},
	{Method: model.RecordingProfessional, Multiplier: 1.5},
}

func LookupGenre(name string) (Genre, bool) {
	for _, g := range Genres {
		if g.Name == name {
			return g, true
		}
	}
	return Genre{}, false
}

func (g Genre) HasSubGenre(name string) bool {
	for _, s := range g.SubGenres {
		if s == name {
			return true
		}
	}
	return false
}

func MethodMultiplier(m model.RecordingMethod) (float64, bool) {
	for _, rm := range RecordingMethods {
		if rm.Method == m {
			return rm.Multiplier, true
		}
	}
	return 0, false
}
