// Package fixtures defines the literal request payloads sent to the AgriCure backend.
// Field names map directly to the JSON keys the prediction API expects, so the
// structs can be marshalled as-is and overridden from the YAML configuration file.
package fixtures

// SoilSample is the agronomic measurement set accepted by /predict and /predict-enhanced.
type SoilSample struct {
	Temperature float64 `yaml:"temperature" json:"Temperature"`
	Humidity    float64 `yaml:"humidity" json:"Humidity"`
	Moisture    float64 `yaml:"moisture" json:"Moisture"`
	SoilType    string  `yaml:"soil_type" json:"Soil_Type"`
	CropType    string  `yaml:"crop_type" json:"Crop_Type"`
	Nitrogen    float64 `yaml:"nitrogen" json:"Nitrogen"`
	Potassium   float64 `yaml:"potassium" json:"Potassium"`
	Phosphorous float64 `yaml:"phosphorous" json:"Phosphorous"`
	PH          float64 `yaml:"ph" json:"pH"`
}

// ExtendedSoilSample adds the field and sampling metadata used by /predict-llm-enhanced.
type ExtendedSoilSample struct {
	SoilSample `yaml:",inline"`

	SowingDate    string  `yaml:"sowing_date" json:"Sowing_Date"`
	FieldSize     float64 `yaml:"field_size" json:"Field_Size"`
	FieldUnit     string  `yaml:"field_unit" json:"Field_Unit"`
	BulkDensity   float64 `yaml:"bulk_density_g_cm3" json:"Bulk_Density_g_cm3"`
	SamplingDepth float64 `yaml:"sampling_depth_cm" json:"Sampling_Depth_cm"`
}

// Coordinates is the body of a /soil-data lookup.
type Coordinates struct {
	Latitude  float64 `yaml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" json:"longitude"`
}

// Set groups every payload a verification run sends.
type Set struct {
	Sample   SoilSample         `yaml:"sample"`
	Extended ExtendedSoilSample `yaml:"extended"`
	Location Coordinates        `yaml:"location"`
}

// Default returns the payloads used when the configuration does not override them.
// The location is New Delhi.
func Default() Set {
	sample := SoilSample{
		Temperature: 25,
		Humidity:    80,
		Moisture:    40,
		SoilType:    "Loamy",
		CropType:    "Rice",
		Nitrogen:    85,
		Potassium:   45,
		Phosphorous: 35,
		PH:          6.5,
	}
	return Set{
		Sample: sample,
		Extended: ExtendedSoilSample{
			SoilSample:    sample,
			SowingDate:    "2024-01-15",
			FieldSize:     1.0,
			FieldUnit:     "hectares",
			BulkDensity:   1.3,
			SamplingDepth: 15.0,
		},
		Location: Coordinates{
			Latitude:  28.6139,
			Longitude: 77.2090,
		},
	}
}
