package country

type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CountryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func toResponse(c Country) CountryResponse {
	return CountryResponse{ID: c.ID, Name: c.Name}
}
