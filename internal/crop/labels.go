package crop

import "fmt"

// CropLabel is the class index produced by the classifier.
type CropLabel int

// CropName is the human readable crop resolved from a CropLabel.
type CropName string

var cropTable = map[CropLabel]CropName{
	1:  "Rice",
	2:  "Maize",
	3:  "Jute",
	4:  "Cotton",
	5:  "Coconut",
	6:  "Papaya",
	7:  "Orange",
	8:  "Apple",
	9:  "Muskmelon",
	10: "Watermelon",
	11: "Grapes",
	12: "Mango",
	13: "Banana",
	14: "Pomegranate",
	15: "Lentil",
	16: "Blackgram",
	17: "MungBean",
	18: "MothBeans",
	19: "PigeonPeas",
	20: "KidneyBeans",
	21: "ChickPea",
	22: "Coffee",
}

// Labels span [MinLabel, MaxLabel].
const (
	MinLabel CropLabel = 1
	MaxLabel CropLabel = 22
)

// Crop is a single entry of the label table.
type Crop struct {
	Label CropLabel `json:"label"`
	Name  CropName  `json:"name"`
}

// Lookup resolves a label to its crop name.
func Lookup(label CropLabel) (CropName, error) {
	name, ok := cropTable[label]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}
	return name, nil
}

// Crops returns the label table ordered by label.
func Crops() []Crop {
	crops := make([]Crop, 0, len(cropTable))
	for label := MinLabel; label <= MaxLabel; label++ {
		crops = append(crops, Crop{Label: label, Name: cropTable[label]})
	}
	return crops
}
