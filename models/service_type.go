package models

// Service describes one bookable service category with its quoted base price.
type Service struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Price    int    `json:"price"` // INR
}

// serviceCatalogue is the closed set of bookable categories.
var serviceCatalogue = map[string]Service{
	"home-visit":  {Category: "home-visit", Label: "Doctor Home Visit", Price: 499},
	"teleconsult": {Category: "teleconsult", Label: "Teleconsultation", Price: 199},
	"nursing":     {Category: "nursing", Label: "Nursing & Paramedic", Price: 499},
	"lab":         {Category: "lab", Label: "Lab Sample Collection", Price: 299},
}

// IsValidService reports whether category is bookable.
func IsValidService(category string) bool {
	_, ok := serviceCatalogue[category]
	return ok
}

// ServicePrice returns the base price for a category, or 0 when unknown.
func ServicePrice(category string) int {
	return serviceCatalogue[category].Price
}

// ServiceLabel returns the display label for a category, falling back to
// the raw category for unknown values.
func ServiceLabel(category string) string {
	if s, ok := serviceCatalogue[category]; ok {
		return s.Label
	}
	return category
}

// AvailableServices returns the catalogue in a stable order.
func AvailableServices() []Service {
	order := []string{"home-visit", "teleconsult", "nursing", "lab"}
	services := make([]Service, 0, len(order))
	for _, c := range order {
		services = append(services, serviceCatalogue[c])
	}
	return services
}
