package domain

// MenuItem is a catalog entry. Category and Price feed the order statistics
// aggregation, which joins payments back to this collection.
type MenuItem struct {
	ID       string  `json:"id" bson:"_id,omitempty"`
	Name     string  `json:"name" bson:"name"`
	Recipe   string  `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Image    string  `json:"image,omitempty" bson:"image,omitempty"`
	Category string  `json:"category" bson:"category"`
	Price    float64 `json:"price" bson:"price"`
}

// Review is read-only customer feedback; there is no mutation path.
type Review struct {
	ID      string  `json:"id" bson:"_id,omitempty"`
	Name    string  `json:"name" bson:"name"`
	Details string  `json:"details" bson:"details"`
	Rating  float64 `json:"rating" bson:"rating"`
}
