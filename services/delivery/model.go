package delivery

// Zone is a delivery area with a flat fee. The set of zones is fixed
// reference data seeded at startup.
type Zone struct {
	UID                string
	Name               string
	DeliveryFeeInCents int
}

func DefaultZones() []Zone {
	return []Zone{
		{UID: "zone_center", Name: "City center", DeliveryFeeInCents: 200},
		{UID: "zone_north", Name: "Northern suburbs", DeliveryFeeInCents: 300},
		{UID: "zone_south", Name: "Southern suburbs", DeliveryFeeInCents: 300},
		{UID: "zone_outskirts", Name: "Outskirts", DeliveryFeeInCents: 500},
	}
}
