package services

import (
	"time"

	"piercing-service/internal/models"
	"piercing-service/internal/rules"
)

// studioPricing is the price board shown to clients. It is maintained by
// hand alongside the rules tables and is not derived from them.
var studioPricing = models.PricingInfo{
	SinglePiercings: map[string]models.PricedItem{
		"set_of_earlobes": {Name: "Set of Earlobes", Price: 80},
		"industrial":      {Name: "Industrial", Price: 100},
		"surface_bar":     {Name: "Surface Bar", Price: 120},
		"nipple":          {Name: "Nipple (one)", Price: 100},
		"nipple_pair":     {Name: "Nipples (pair)", Price: 150},
		"dermal":          {Name: "Dermal (one)", Price: 175},
		"dermal_pair":     {Name: "Dermals (pair)", Price: 250},
	},
	StandardPiercings: models.StandardPiercings{
		Single: models.StandardSingle{
			Price: 90,
			Types: []string{
				"Nostril", "Tragus", "Rook", "Septum", "Daith", "Helix",
				"Forward-Helix", "Conch", "Anti-Tragus", "Snug", "Eyebrow",
				"Navel", "Tongue", "Lip", "Labret", "Monroe", "Medusa",
			},
		},
		Pair: models.StandardPair{Price: 130, Additional: 20},
	},
	Services: map[string]models.PricedItem{
		"jewelry_change":    {Name: "Jewelry Change", Price: 5},
		"dermal_top_change": {Name: "Dermal Top Change", Price: 10},
	},
	Guarantee: "All piercings include a three month guarantee",
}

var studioInfo = models.BusinessInfo{
	Name:        "Multnomah Body Piercing & Tattoo",
	Address:     "1861 NE DIVISION ST GRESHAM OR. 97030",
	Phone:       "(503) 669-4191",
	Email:       "Multnomahtattoo@gmail.com",
	Coordinates: models.Coordinates{Lat: 45.5053461, Lng: -122.4131308},
	Hours: map[string]string{
		"tuesday":   "11:00 AM – 6:00 PM",
		"wednesday": "11:00 AM – 6:00 PM",
		"thursday":  "11:00 AM – 6:00 PM",
		"friday":    "11:00 AM – 7:00 PM",
		"saturday":  "11:00 AM – 7:00 PM",
		"sunday":    "CLOSED",
		"monday":    "CLOSED",
	},
}

type CatalogService struct {
	engine *rules.Engine
}

func NewCatalogService(engine *rules.Engine) *CatalogService {
	return &CatalogService{engine: engine}
}

func (s *CatalogService) PricingInfo() models.PricingInfo {
	return studioPricing
}

func (s *CatalogService) BusinessInfo() models.BusinessInfo {
	return studioInfo
}

func (s *CatalogService) JewelryOptions(piercingType string) models.JewelryOptionsResponse {
	return models.JewelryOptionsResponse{
		PiercingType: piercingType,
		Options:      s.engine.ResolveJewelryOptions(piercingType),
	}
}

// Quote evaluates a piercing type; a nil at means now.
func (s *CatalogService) Quote(piercingType string, at *time.Time) rules.Result {
	return s.engine.Evaluate(piercingType, at)
}
