package dto

// RegisterRequest describes a registration attempt against a category.
// PartnerName turns the attempt into a paired registration: two participants
// sharing the same notes and a couple grouping.
type RegisterRequest struct {
	CategoryID  string `json:"category_id" validate:"required"`
	Name        string `json:"name"`
	PartnerName string `json:"partner_name"`
	Notes       string `json:"notes"`
}
