package dto

// MapDocument is the structured (YAML/JSON) form of a treasure map.
// It uses "mapstructure" tags so generic decoded trees map onto it directly.
type MapDocument struct {
	Start        Point         `json:"start" yaml:"start" mapstructure:"start"`
	Instructions []Instruction `json:"instructions" yaml:"instructions" mapstructure:"instructions"`
}

// Point is a start coordinate. It may also be written as a [row, col] pair.
type Point struct {
	Row int `json:"row" yaml:"row" mapstructure:"row"`
	Col int `json:"col" yaml:"col" mapstructure:"col"`
}

// Instruction is one movement record. It may also be written as an [azimuth, steps] pair.
type Instruction struct {
	Azimuth int `json:"azimuth" yaml:"azimuth" mapstructure:"azimuth"`
	Steps   int `json:"steps" yaml:"steps" mapstructure:"steps"`
}
