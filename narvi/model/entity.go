package model

// PrivateEntityRequest is the wire shape of an individual customer record.
// Use NewPrivateEntityRequest so the documented defaults are applied; zero
// values here are sent as-is.
type PrivateEntityRequest struct {
	FirstName            string         `json:"first_name"`
	LastName             string         `json:"last_name"`
	Birthdate            string         `json:"birthdate,omitempty"`
	Address              string         `json:"address,omitempty"`
	ZipCode              string         `json:"zip_code,omitempty"`
	City                 string         `json:"city,omitempty"`
	Country              string         `json:"country"`
	CitizenshipCountries []string       `json:"citizenship_countries"`
	BirthCountry         string         `json:"birth_country"`
	WealthSource         []WealthSource `json:"wealth_source"`
	IsPoliticallyExposed bool           `json:"is_politically_exposed"`
	OpeningAccountReason []string       `json:"opening_account_reason"`
}

// NewPrivateEntityRequest fills the platform defaults: citizenship and birth
// country fall back to the residence country, wealth source to SALARY and
// account opening reason to SAVINGS.
func NewPrivateEntityRequest(firstName, lastName, country string) PrivateEntityRequest {
	return PrivateEntityRequest{
		FirstName:            firstName,
		LastName:             lastName,
		Country:              country,
		CitizenshipCountries: []string{country},
		BirthCountry:         country,
		WealthSource:         []WealthSource{WealthSalary},
		IsPoliticallyExposed: false,
		OpeningAccountReason: []string{"SAVINGS"},
	}
}

// BusinessEntityRequest is the wire shape of a company customer record.
type BusinessEntityRequest struct {
	Details       BusinessDetails    `json:"details"`
	Activities    BusinessActivities `json:"activities"`
	Beneficiaries []Beneficiary      `json:"beneficiaries"`
	Directors     []Director         `json:"directors"`
	Files         []FileRef          `json:"files"`
}

type BusinessDetails struct {
	Name               string `json:"name"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	Address            string `json:"address,omitempty"`
	ZipCode            string `json:"zip_code,omitempty"`
	City               string `json:"city,omitempty"`
	Country            string `json:"country"`
}

type BusinessActivities struct {
	Nace        string `json:"nace"`
	Description string `json:"description,omitempty"`
}

type Beneficiary struct {
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	OwnershipPercent float64 `json:"ownership_percent,omitempty"`
}

type Director struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
}

type FileRef struct {
	Pid string `json:"pid"`
}

// DefaultNace is the activity code used when the application does not carry
// one (62.01, computer programming).
const DefaultNace = "6201"

// NewBusinessEntityRequest applies the nace default.
func NewBusinessEntityRequest(details BusinessDetails) BusinessEntityRequest {
	return BusinessEntityRequest{
		Details:       details,
		Activities:    BusinessActivities{Nace: DefaultNace},
		Beneficiaries: []Beneficiary{},
		Directors:     []Director{},
		Files:         []FileRef{},
	}
}

// Entity is the created customer record as reported back by the platform.
// It is owned and persisted remotely; only the identifiers travel back.
type Entity struct {
	Pid  string     `json:"pid"`
	Kind EntityKind `json:"kind,omitempty"`
}
