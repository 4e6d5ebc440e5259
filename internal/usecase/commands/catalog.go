package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/catalog"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCompanyRequired   = errs.New("actor must belong to a company")
	ErrCatalogNotFound   = errs.New("catalog resource not found")
	ErrCategoryInUse     = errs.New("category still has services")
	ErrInvalidCatalogArg = errs.New("invalid catalog input")
)

type CatalogCommands interface {
	CreateService(ctx context.Context, actor ActorContext, req reqdto.CreateServiceRequest) (uuid.UUID, error)
	UpdateService(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateServiceRequest) error
	DeleteService(ctx context.Context, actor ActorContext, id uuid.UUID) error

	CreateCategory(ctx context.Context, actor ActorContext, req reqdto.CreateCategoryRequest) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, actor ActorContext, id uuid.UUID) error

	CreateProvider(ctx context.Context, actor ActorContext, req reqdto.CreateProviderRequest) (uuid.UUID, error)
	UpdateProvider(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateProviderRequest) error
	DeleteProvider(ctx context.Context, actor ActorContext, id uuid.UUID) error
}

type catalogCommandsImpl struct {
	uow      shared.UnitOfWork
	currency string
}

func NewCatalogCommands(uow shared.UnitOfWork, currency string) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, currency: currency}
}

func requireCompany(actor ActorContext) (uuid.UUID, error) {
	if actor.CompanyID == nil {
		return uuid.Nil, ErrCompanyRequired
	}
	return *actor.CompanyID, nil
}

func (c *catalogCommandsImpl) CreateService(ctx context.Context, actor ActorContext, req reqdto.CreateServiceRequest) (uuid.UUID, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return uuid.Nil, err
	}

	price, err := catalog.NewMoney(req.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogArg)
	}

	service, err := catalog.NewService(companyID, req.ProviderID, req.CategoryID, req.Name, req.Description, price, c.currency, req.DurationMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogArg)
	}

	addons := make([]catalog.Addon, 0, len(req.Addons))
	for _, a := range req.Addons {
		addonPrice, err := catalog.NewMoney(a.PriceCents)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrInvalidCatalogArg)
		}
		addons = append(addons, catalog.Addon{
			ID:        uuid.New(),
			ServiceID: service.ID(),
			Name:      a.Name,
			Price:     addonPrice,
			Required:  a.Required,
		})
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Catalog().CreateService(ctx, tx.DB(), service, addons)
		if err != nil {
			return err
		}
		id = created
		return c.audit(ctx, tx, actor, "service.created", "service", &id, req.Name)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *catalogCommandsImpl) UpdateService(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateServiceRequest) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	current, _, err := c.uow.CommandReads().ServiceByID(ctx, id)
	if err != nil {
		return markNotFound(err, ErrCatalogNotFound)
	}
	if current.CompanyID() != companyID {
		return ErrCatalogNotFound
	}

	price, err := catalog.NewMoney(req.PriceCents)
	if err != nil {
		return errs.Mark(err, ErrInvalidCatalogArg)
	}

	updated := catalog.ReconstructService(
		id, companyID, current.ProviderID(), req.CategoryID,
		req.Name, req.Description,
		price, current.Currency(),
		req.DurationMin,
		current.Rating(), current.ReviewCount(),
		req.IsActive,
		current.CreatedAt(), current.UpdatedAt(),
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().UpdateService(ctx, tx.DB(), updated); err != nil {
			return err
		}
		return c.audit(ctx, tx, actor, "service.updated", "service", &id, req.Name)
	})
}

func (c *catalogCommandsImpl) DeleteService(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Catalog().DeleteService(ctx, tx.DB(), id, companyID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCatalogNotFound
		}
		return c.audit(ctx, tx, actor, "service.deleted", "service", &id, "")
	})
}

func (c *catalogCommandsImpl) CreateCategory(ctx context.Context, actor ActorContext, req reqdto.CreateCategoryRequest) (uuid.UUID, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return uuid.Nil, err
	}

	category, err := catalog.NewCategory(companyID, req.Name, req.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogArg)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Catalog().CreateCategory(ctx, tx.DB(), category)
		if err != nil {
			return err
		}
		id = created
		return c.audit(ctx, tx, actor, "category.created", "category", &id, req.Name)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *catalogCommandsImpl) UpdateCategory(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateCategoryRequest) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	updated := catalog.ReconstructCategory(id, companyID, req.Name, req.Description, time.Time{}, time.Time{})

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().UpdateCategory(ctx, tx.DB(), updated); err != nil {
			return markNotFound(err, ErrCatalogNotFound)
		}
		return c.audit(ctx, tx, actor, "category.updated", "category", &id, req.Name)
	})
}

func (c *catalogCommandsImpl) DeleteCategory(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Catalog().DeleteCategory(ctx, tx.DB(), id, companyID)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrCategoryInUse
			}
			return err
		}
		if affected == 0 {
			return ErrCatalogNotFound
		}
		return c.audit(ctx, tx, actor, "category.deleted", "category", &id, "")
	})
}

func (c *catalogCommandsImpl) CreateProvider(ctx context.Context, actor ActorContext, req reqdto.CreateProviderRequest) (uuid.UUID, error) {
	companyID, err := requireCompany(actor)
	if err != nil {
		return uuid.Nil, err
	}

	provider, err := catalog.NewProvider(companyID, req.UserID, req.DisplayName, req.OpenMin, req.CloseMin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidCatalogArg)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Catalog().CreateProvider(ctx, tx.DB(), provider)
		if err != nil {
			return err
		}
		id = created
		return c.audit(ctx, tx, actor, "provider.created", "provider", &id, req.DisplayName)
	})
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (c *catalogCommandsImpl) UpdateProvider(ctx context.Context, actor ActorContext, id uuid.UUID, req reqdto.UpdateProviderRequest) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	current, err := c.uow.CommandReads().ProviderByID(ctx, id)
	if err != nil {
		return markNotFound(err, ErrCatalogNotFound)
	}
	if current.CompanyID() != companyID {
		return ErrCatalogNotFound
	}

	if req.OpenMin >= req.CloseMin {
		return errs.Mark(catalog.ErrInvalidWorkingHours, ErrInvalidCatalogArg)
	}

	updated := catalog.ReconstructProvider(
		id, companyID, current.UserID(),
		req.DisplayName, req.OpenMin, req.CloseMin,
		req.IsActive,
		current.CreatedAt(), current.UpdatedAt(),
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Catalog().UpdateProvider(ctx, tx.DB(), updated); err != nil {
			return markNotFound(err, ErrCatalogNotFound)
		}
		return c.audit(ctx, tx, actor, "provider.updated", "provider", &id, req.DisplayName)
	})
}

func (c *catalogCommandsImpl) DeleteProvider(ctx context.Context, actor ActorContext, id uuid.UUID) error {
	companyID, err := requireCompany(actor)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Catalog().DeactivateProvider(ctx, tx.DB(), id, companyID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrCatalogNotFound
		}
		return c.audit(ctx, tx, actor, "provider.deleted", "provider", &id, "")
	})
}

func (c *catalogCommandsImpl) audit(ctx context.Context, tx shared.Tx, actor ActorContext, action, resourceType string, resourceID *uuid.UUID, detail string) error {
	return tx.AuditLogs().Insert(ctx, tx.DB(), shared.AuditEntry{
		ActorID:      actor.UserID,
		CompanyID:    actor.CompanyID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Detail:       detail,
		ClientIP:     actor.ClientIP,
		UserAgent:    actor.UserAgent,
	})
}

func markNotFound(err error, marker error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, marker)
	}
	return err
}
