package rules

// CustomJewelryOption is only offered for earlobes.
const CustomJewelryOption = "custom"

var earlobeJewelryOptions = map[string]string{
	"14g_captive_ring":  "14g Captive Bead Ring",
	"16g_labret_stud":   "16g Labret Stud",
	CustomJewelryOption: "Custom Jewelry Available",
}

var standardJewelryOptions = map[string]string{
	"16g_bead_ring":   "16g Bead Ring",
	"16g_labret_stud": "16g Labret Stud with Clear Jewel",
}
