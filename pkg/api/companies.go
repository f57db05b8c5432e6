package api

type ListCompaniesRequest struct{}

type ListCompaniesResponse struct {
	Companies []string `json:"companies"`
}

type AddCompanyRequest struct {
	Name string `json:"name"`
}

type AddCompanyResponse struct {
	Companies []string `json:"companies"`
}

type DeleteCompanyRequest struct {
	Name string `json:"name"`
}

type DeleteCompanyResponse struct {
	Companies []string `json:"companies"`
}
