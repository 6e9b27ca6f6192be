package dto

type StoreRequest struct {
	StoreName    string `json:"store_name" binding:"required" validate:"required"`
	AddressLine1 string `json:"address_line_1"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
}

type StoreResponse struct {
	StoreName    string `json:"store_name"`
	AddressLine1 string `json:"address_line_1"`
	Country      string `json:"country"`
	PostalCode   string `json:"postal_code"`
}

type StoreSavedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
