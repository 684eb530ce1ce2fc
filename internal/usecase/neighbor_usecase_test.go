package usecase

import (
	"context"
	"errors"
	"testing"

	"control_plagas/internal/domain/entities"
	mock_interfaces "control_plagas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validNeighborInput() entities.Neighbor {
	return entities.Neighbor{
		Name: "Ana Gomez",
		Address: entities.Address{
			Street:   "San Martin",
			Number:   "742",
			Locality: "Moreno",
		},
		Neighborhood: "Villa Escobar",
		Phone:        "+54 11 5555-1234",
		AreaM2:       120,
	}
}

func TestNeighborUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc := NewNeighborUseCase(nil)
		cases := map[string]func(*entities.Neighbor){
			"name":             func(n *entities.Neighbor) { n.Name = "  " },
			"address street":   func(n *entities.Neighbor) { n.Address.Street = "" },
			"address locality": func(n *entities.Neighbor) { n.Address.Locality = "" },
			"neighborhood":     func(n *entities.Neighbor) { n.Neighborhood = "" },
			"phone":            func(n *entities.Neighbor) { n.Phone = "" },
			"area":             func(n *entities.Neighbor) { n.AreaM2 = 0 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				n := validNeighborInput()
				mutate(&n)
				if _, err := uc.Create(context.Background(), n); !errors.Is(err, ErrInvalidNeighbor) {
					t.Fatalf("expected ErrInvalidNeighbor, got %v", err)
				}
			})
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Neighbor{}, errors.New("db"))

		if _, err := uc.Create(context.Background(), validNeighborInput()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success assigns id and timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Neighbor) (entities.Neighbor, error) {
				if n.ID == "" {
					t.Fatalf("expected generated id")
				}
				if n.CreatedAt.IsZero() || !n.CreatedAt.Equal(n.UpdatedAt) {
					t.Fatalf("expected created_at == updated_at, got %v / %v", n.CreatedAt, n.UpdatedAt)
				}
				return n, nil
			},
		)

		res, err := uc.Create(context.Background(), validNeighborInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Ana Gomez" {
			t.Fatalf("unexpected neighbor: %+v", res)
		}
	})
}

func TestNeighborUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNeighborUseCase(nil)
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidNeighborID) {
			t.Fatalf("expected ErrInvalidNeighborID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{}, nil)

		if _, err := uc.GetByID(context.Background(), "n-1"); !errors.Is(err, ErrNeighborNotFound) {
			t.Fatalf("expected ErrNeighborNotFound, got %v", err)
		}
	})

	t.Run("success trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1"}, nil)

		res, err := uc.GetByID(context.Background(), " n-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "n-1" {
			t.Fatalf("unexpected neighbor: %+v", res)
		}
	})
}

func TestNeighborUseCase_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	f64Ptr := func(f float64) *float64 { return &f }

	t.Run("empty patch", func(t *testing.T) {
		uc := NewNeighborUseCase(nil)
		if _, err := uc.Update(context.Background(), "n-1", entities.NeighborPatch{}); !errors.Is(err, ErrInvalidNeighbor) {
			t.Fatalf("expected ErrInvalidNeighbor, got %v", err)
		}
	})

	t.Run("blanking a required field", func(t *testing.T) {
		uc := NewNeighborUseCase(nil)
		cases := map[string]entities.NeighborPatch{
			"name":     {Name: strPtr("   ")},
			"street":   {Address: &entities.Address{Street: "", Locality: "Moreno"}},
			"locality": {Address: &entities.Address{Street: "San Martin", Locality: " "}},
			"phone":    {Phone: strPtr("")},
			"area":     {AreaM2: f64Ptr(-3)},
		}
		for name, patch := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := uc.Update(context.Background(), "n-1", patch); !errors.Is(err, ErrInvalidNeighbor) {
					t.Fatalf("expected ErrInvalidNeighbor, got %v", err)
				}
			})
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().Update(gomock.Any(), "n-1", gomock.Any()).Return(entities.Neighbor{}, nil)

		patch := entities.NeighborPatch{Name: strPtr("Nueva")}
		if _, err := uc.Update(context.Background(), "n-1", patch); !errors.Is(err, ErrNeighborNotFound) {
			t.Fatalf("expected ErrNeighborNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		patch := entities.NeighborPatch{Phone: strPtr("+54 11 4444-0000")}
		repo.EXPECT().Update(gomock.Any(), "n-1", patch).Return(entities.Neighbor{ID: "n-1", Phone: "+54 11 4444-0000"}, nil)

		res, err := uc.Update(context.Background(), "n-1", patch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Phone != "+54 11 4444-0000" {
			t.Fatalf("unexpected neighbor: %+v", res)
		}
	})
}

func TestNeighborUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNeighborUseCase(nil)
		if err := uc.Delete(context.Background(), "  "); !errors.Is(err, ErrInvalidNeighborID) {
			t.Fatalf("expected ErrInvalidNeighborID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "n-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "n-1"); !errors.Is(err, ErrNeighborNotFound) {
			t.Fatalf("expected ErrNeighborNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewNeighborUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "n-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "n-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
