package narvi

import (
	"context"
	"fmt"
	"strings"

	"github.com/alapierre/go-narvi-client/narvi/api"
	"github.com/alapierre/go-narvi-client/narvi/model"
)

// ApplicationType selects the onboarding branch.
type ApplicationType int

const (
	Individual ApplicationType = iota
	Company
)

func (t *ApplicationType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "individual":
		*t = Individual
	case "company":
		*t = Company
	default:
		return fmt.Errorf("%w: %q (allowed: individual, company)", ErrUnsupportedApplicationType, text)
	}
	return nil
}

// Application is the payload handed over by the application layer. Individual
// applications use the personal fields, company ones the company fields.
type Application struct {
	FirstName     string
	LastName      string
	Birthdate     string
	Address       string
	ZipCode       string
	City          string
	Country       string
	Nationality   string
	SourceOfFunds string

	CompanyName        string
	RegistrationNumber string
	Nace               string
	Beneficiaries      []model.Beneficiary
	Directors          []model.Director
}

// ProvisioningStatus tags the outcome of a Provision call.
type ProvisioningStatus int

const (
	// Provisioned - entity and account both exist.
	Provisioned ProvisioningStatus = iota
	// EntityOnly - the entity exists remotely but account issuance failed.
	// Retrying from scratch would create a duplicate entity; reconcile with
	// the surfaced pid instead.
	EntityOnly
	// Failed - entity creation failed, nothing exists remotely.
	Failed
)

// ProvisioningResult preserves partial-success information. Entity is
// populated whenever the entity was created, including the EntityOnly case.
type ProvisioningResult struct {
	Status     ProvisioningStatus
	Entity     *model.Entity
	Account    *model.Account
	EntityErr  error
	AccountErr error
}

func (r ProvisioningResult) Succeeded() bool {
	return r.Status == Provisioned
}

// wealthSources maps application-level source-of-funds values to the
// platform's compliance categories. Unrecognized values fall back to SALARY.
var wealthSources = map[string]model.WealthSource{
	"salary":      model.WealthSalary,
	"business":    model.WealthBusinessIncome,
	"investment":  model.WealthInvestment,
	"inheritance": model.WealthInheritance,
	"savings":     model.WealthSavings,
	"pension":     model.WealthPension,
}

func mapWealthSource(s string) model.WealthSource {
	if ws, ok := wealthSources[strings.ToLower(strings.TrimSpace(s))]; ok {
		return ws
	}
	return model.WealthSalary
}

// Provision creates the banking relationship for one application: entity
// first, then an EUR account for the returned pid. Account issuance never
// starts unless entity creation succeeded. The returned error is non-nil
// only for validation and signing failures; remote failures are reported
// through the result.
func (c *Client) Provision(ctx context.Context, appType ApplicationType, app Application) (ProvisioningResult, error) {

	var (
		entityRes api.EntityResult
		kind      model.EntityKind
		err       error
	)

	switch appType {
	case Individual:
		kind = model.EntityPrivate
		entityRes, err = c.Entities.CreatePrivate(ctx, privateRequest(app))
	case Company:
		kind = model.EntityBusiness
		entityRes, err = c.Entities.CreateBusiness(ctx, businessRequest(app))
	default:
		return ProvisioningResult{}, fmt.Errorf("%w: %d", ErrUnsupportedApplicationType, appType)
	}
	if err != nil {
		return ProvisioningResult{}, err
	}

	if !entityRes.Success {
		logger.Debugf("entity creation failed: %s", entityRes.Error)
		return ProvisioningResult{Status: Failed, EntityErr: entityRes.Err()}, nil
	}

	entity := &model.Entity{Pid: entityRes.Pid, Kind: kind}

	accountRes, err := c.Accounts.Create(ctx, kind, entityRes.Pid, api.DefaultCurrency)
	if err != nil {
		// The entity already exists remotely; surface its pid even though
		// the dispatch itself failed hard.
		return ProvisioningResult{Status: EntityOnly, Entity: entity, AccountErr: err}, err
	}

	if !accountRes.Success {
		logger.Debugf("account issuance failed for entity %s: %s", entityRes.Pid, accountRes.Error)
		return ProvisioningResult{Status: EntityOnly, Entity: entity, AccountErr: accountRes.Err()}, nil
	}

	return ProvisioningResult{
		Status:  Provisioned,
		Entity:  entity,
		Account: &accountRes.Account,
	}, nil
}

func privateRequest(app Application) model.PrivateEntityRequest {
	req := model.NewPrivateEntityRequest(app.FirstName, app.LastName, app.Country)
	req.Birthdate = app.Birthdate
	req.Address = app.Address
	req.ZipCode = app.ZipCode
	req.City = app.City
	if app.Nationality != "" {
		req.CitizenshipCountries = []string{app.Nationality}
	}
	req.WealthSource = []model.WealthSource{mapWealthSource(app.SourceOfFunds)}
	return req
}

func businessRequest(app Application) model.BusinessEntityRequest {
	req := model.NewBusinessEntityRequest(model.BusinessDetails{
		Name:               app.CompanyName,
		RegistrationNumber: app.RegistrationNumber,
		Address:            app.Address,
		ZipCode:            app.ZipCode,
		City:               app.City,
		Country:            app.Country,
	})
	if app.Nace != "" {
		req.Activities.Nace = app.Nace
	}
	if len(app.Beneficiaries) > 0 {
		req.Beneficiaries = app.Beneficiaries
	}
	if len(app.Directors) > 0 {
		req.Directors = app.Directors
	}
	return req
}
