package models

type PricedItem struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

type StandardSingle struct {
	Price int      `json:"price"`
	Types []string `json:"types"`
}

type StandardPair struct {
	Price      int `json:"price"`
	Additional int `json:"additional"`
}

type StandardPiercings struct {
	Single StandardSingle `json:"single"`
	Pair   StandardPair   `json:"pair"`
}

// PricingInfo mirrors the studio price board for client-side display.
type PricingInfo struct {
	SinglePiercings   map[string]PricedItem `json:"single_piercings"`
	StandardPiercings StandardPiercings     `json:"standard_piercings"`
	Services          map[string]PricedItem `json:"services"`
	Guarantee         string                `json:"guarantee"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BusinessInfo struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Coordinates Coordinates       `json:"coordinates"`
	Hours       map[string]string `json:"hours"`
}

type JewelryOptionsResponse struct {
	PiercingType string            `json:"piercing_type"`
	Options      map[string]string `json:"options"`
}
