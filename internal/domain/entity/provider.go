package entity

// ProviderOption is a provider as offered by the provider picker
type ProviderOption struct {
	Label string `json:"label" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// Provider is a clinician or staff member assigned to an appointment
type Provider struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}
