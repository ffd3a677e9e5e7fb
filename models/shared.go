package models

// GPSLocation is a single device position fix.
type GPSLocation struct {
	Lat      float64 `bson:"lat" json:"lat"`
	Lng      float64 `bson:"lng" json:"lng"`
	Accuracy float64 `bson:"accuracy" json:"accuracy"` // meters, rounded
}
