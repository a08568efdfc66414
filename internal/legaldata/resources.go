package legaldata

import "nyaay-saathi/internal/models"

// SupportedLanguages is returned verbatim by /api/languages.
var SupportedLanguages = []string{"English", "Hinglish", "Hindi", "Bengali", "Tamil", "Telugu", "Marathi", "Gujarati", "Kannada"}

// NearbyResources is a static stand-in for a location lookup; coordinates are
// accepted but not used.
var NearbyResources = []models.ResourceGroup{
	{
		Type: "police_station",
		Resources: []models.LegalResource{
			{Name: "Kumbalagodu Police Station", Address: "Kumbalagodu, Mysore Road", Phone: "N/A", Distance: "1.2 km"},
			{Name: "Kengeri Police Station", Address: "Mysore Road, Kengeri Satellite Town", Phone: "080-28484210", Distance: "5.5 km"},
			{Name: "Rajarajeshwari Nagar Police Station", Address: "Jawaharlal Nehru Road, Rajarajeshwari Nagar", Phone: "080-22942559", Distance: "8.0 km"},
			{Name: "Koramangala Police Station", Address: "80 Feet Road, Koramangala", Phone: "080-22943900", Distance: "18.7 km"},
			{Name: "Indiranagar Police Station", Address: "CMH Road, Indiranagar", Phone: "080-22943930", Distance: "21.9 km"},
			{Name: "Cubbon Park Police Station", Address: "MG Road, Cubbon Park", Phone: "080-22943940", Distance: "16.9 km"},
		},
	},
	{
		Type: "consumer_court",
		Resources: []models.LegalResource{
			{Name: "Bangalore Urban District Consumer Forum", Address: "Shantinagar, Bangalore", Phone: "080-22861043", Distance: "4.3 km"},
			{Name: "Karnataka State Consumer Disputes Redressal Commission", Address: "Palace Road, Bangalore", Phone: "080-22033857", Distance: "6.7 km"},
		},
	},
	{
		Type: "legal_aid",
		Resources: []models.LegalResource{
			{Name: "District Legal Services Authority", Address: "City Civil Court Complex, Mayo Hall", Phone: "080-25321411", Distance: "4.8 km"},
			{Name: "Karnataka State Legal Services Authority", Address: "Nyaya Degula, HCS Layout", Phone: "080-22111714", Distance: "7.2 km"},
		},
	},
}
