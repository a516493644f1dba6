package entity

// ShippingType classifies how a store delivers orders.
type ShippingType string

const (
	ShippingLocalPickup   ShippingType = "local_pickup"
	ShippingRegional      ShippingType = "regional"
	ShippingNational      ShippingType = "national"
	ShippingInternational ShippingType = "international"
)
