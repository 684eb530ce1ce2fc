package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"control_plagas/internal/domain/entities"
	"control_plagas/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNeighborNotFound  = errors.New("neighbor not found")
	ErrInvalidNeighborID = errors.New("invalid neighbor id")
	ErrInvalidNeighbor   = errors.New("invalid neighbor payload")
)

// INeighborUseCase exposes the neighbor registry operations.
type INeighborUseCase interface {
	Create(ctx context.Context, n entities.Neighbor) (entities.Neighbor, error)
	List(ctx context.Context) ([]entities.Neighbor, error)
	GetByID(ctx context.Context, id string) (entities.Neighbor, error)
	Update(ctx context.Context, id string, patch entities.NeighborPatch) (entities.Neighbor, error)
	Delete(ctx context.Context, id string) error
}

type NeighborUseCase struct {
	repo interfaces.INeighborRepository
}

var _ INeighborUseCase = (*NeighborUseCase)(nil)

func NewNeighborUseCase(repo interfaces.INeighborRepository) *NeighborUseCase {
	return &NeighborUseCase{repo: repo}
}

func (u *NeighborUseCase) Create(ctx context.Context, n entities.Neighbor) (entities.Neighbor, error) {
	if err := validateNeighbor(n); err != nil {
		return entities.Neighbor{}, err
	}

	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now
	return u.repo.Create(ctx, n)
}

func (u *NeighborUseCase) List(ctx context.Context) ([]entities.Neighbor, error) {
	return u.repo.List(ctx)
}

func (u *NeighborUseCase) GetByID(ctx context.Context, id string) (entities.Neighbor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Neighbor{}, ErrInvalidNeighborID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Neighbor{}, err
	}
	if n.ID == "" {
		return entities.Neighbor{}, ErrNeighborNotFound
	}
	return n, nil
}

func (u *NeighborUseCase) Update(ctx context.Context, id string, patch entities.NeighborPatch) (entities.Neighbor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Neighbor{}, ErrInvalidNeighborID
	}
	if patch.Empty() {
		return entities.Neighbor{}, fmt.Errorf("%w: empty patch", ErrInvalidNeighbor)
	}
	if err := validateNeighborPatch(patch); err != nil {
		return entities.Neighbor{}, err
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Neighbor{}, err
	}
	if updated.ID == "" {
		return entities.Neighbor{}, ErrNeighborNotFound
	}
	return updated, nil
}

func (u *NeighborUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNeighborID
	}

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNeighborNotFound
	}
	return nil
}

// validateNeighbor enforces required-field presence at the storage boundary:
// name, street, locality, neighborhood, phone and a positive area.
func validateNeighbor(n entities.Neighbor) error {
	switch {
	case strings.TrimSpace(n.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidNeighbor)
	case strings.TrimSpace(n.Address.Street) == "":
		return fmt.Errorf("%w: address.street is required", ErrInvalidNeighbor)
	case strings.TrimSpace(n.Address.Locality) == "":
		return fmt.Errorf("%w: address.locality is required", ErrInvalidNeighbor)
	case strings.TrimSpace(n.Neighborhood) == "":
		return fmt.Errorf("%w: neighborhood is required", ErrInvalidNeighbor)
	case strings.TrimSpace(n.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidNeighbor)
	case n.AreaM2 <= 0:
		return fmt.Errorf("%w: area_m2 must be positive", ErrInvalidNeighbor)
	}
	return nil
}

// validateNeighborPatch rejects patches that would blank out a required field.
func validateNeighborPatch(p entities.NeighborPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrInvalidNeighbor)
	}
	if p.Address != nil {
		if strings.TrimSpace(p.Address.Street) == "" {
			return fmt.Errorf("%w: address.street cannot be blank", ErrInvalidNeighbor)
		}
		if strings.TrimSpace(p.Address.Locality) == "" {
			return fmt.Errorf("%w: address.locality cannot be blank", ErrInvalidNeighbor)
		}
	}
	if p.Neighborhood != nil && strings.TrimSpace(*p.Neighborhood) == "" {
		return fmt.Errorf("%w: neighborhood cannot be blank", ErrInvalidNeighbor)
	}
	if p.Phone != nil && strings.TrimSpace(*p.Phone) == "" {
		return fmt.Errorf("%w: phone cannot be blank", ErrInvalidNeighbor)
	}
	if p.AreaM2 != nil && *p.AreaM2 <= 0 {
		return fmt.Errorf("%w: area_m2 must be positive", ErrInvalidNeighbor)
	}
	return nil
}
