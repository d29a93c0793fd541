package api

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/alapierre/go-narvi-client/narvi/model"
)

type EntityService interface {
	CreatePrivate(ctx context.Context, req model.PrivateEntityRequest) (EntityResult, error)
	CreateBusiness(ctx context.Context, req model.BusinessEntityRequest) (EntityResult, error)
}

// EntityResult is the dispatcher result plus the pid extracted on success.
type EntityResult struct {
	Result
	Pid string
}

type entity struct {
	client Client
}

func NewEntityService(client Client) EntityService {
	return &entity{client: client}
}

// CreatePrivate registers an individual customer record. The record is
// created exactly once per successful call and is immutable remotely.
func (e *entity) CreatePrivate(ctx context.Context, req model.PrivateEntityRequest) (EntityResult, error) {

	log.Debug("Create private entity")

	res, err := e.client.Post(ctx, "/baas/v1.0/entity/private/create", req)
	if err != nil {
		return EntityResult{}, err
	}
	return extractPid(res)
}

// CreateBusiness registers a company customer record.
func (e *entity) CreateBusiness(ctx context.Context, req model.BusinessEntityRequest) (EntityResult, error) {

	log.Debug("Create business entity")

	res, err := e.client.Post(ctx, "/baas/v1.0/entity/business/create", req)
	if err != nil {
		return EntityResult{}, err
	}
	return extractPid(res)
}

func extractPid(res Result) (EntityResult, error) {
	out := EntityResult{Result: res}
	if !res.Success {
		return out, nil
	}

	var created model.Entity
	if err := res.Decode(&created); err != nil {
		return out, err
	}
	out.Pid = created.Pid
	return out, nil
}
