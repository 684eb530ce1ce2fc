package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"control_plagas/internal/domain/entities"
	mock_interfaces "control_plagas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderInput() entities.WorkOrder {
	return entities.WorkOrder{
		NeighborID:  "n-1",
		ServiceType: "fumigation",
		ProblemType: "Rodents",
	}
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("missing neighbor id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		o := validOrderInput()
		o.NeighborID = "   "
		_, err := uc.Create(context.Background(), o)
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("missing service type", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		o := validOrderInput()
		o.ServiceType = ""
		_, err := uc.Create(context.Background(), o)
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("neighbor lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(nil, neighborRepo)

		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{}, errors.New("db"))

		_, err := uc.Create(context.Background(), validOrderInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("neighbor does not resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(nil, neighborRepo)

		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{}, nil)

		_, err := uc.Create(context.Background(), validOrderInput())
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("sequence assignment error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, neighborRepo)

		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1"}, nil)
		repo.EXPECT().NextNumeroOrden(gomock.Any()).Return(int64(0), errors.New("counter"))

		_, err := uc.Create(context.Background(), validOrderInput())
		if err == nil || err.Error() != "counter" {
			t.Fatalf("expected counter error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, neighborRepo)

		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1", Name: "Ana"}, nil)
		repo.EXPECT().NextNumeroOrden(gomock.Any()).Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) {
				if o.ID == "" || o.NumeroOrden != 7 || o.Status != entities.WorkOrderStatusPending {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Visits == nil || len(o.Visits) != 0 {
					t.Fatalf("expected empty visit list, got %+v", o.Visits)
				}
				if o.Neighbor != nil {
					t.Fatalf("joined neighbor must not be persisted")
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), validOrderInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NumeroOrden != 7 {
			t.Fatalf("expected numero_orden 7, got %d", res.NumeroOrden)
		}
		if res.Neighbor == nil || res.Neighbor.Name != "Ana" {
			t.Fatalf("expected joined neighbor, got %+v", res.Neighbor)
		}
	})

	t.Run("sequential creations get 1..N", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, neighborRepo)

		var seq int64
		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1"}, nil).Times(3)
		repo.EXPECT().NextNumeroOrden(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
			seq++
			return seq, nil
		}).Times(3)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.WorkOrder) (entities.WorkOrder, error) { return o, nil },
		).Times(3)

		for want := int64(1); want <= 3; want++ {
			res, err := uc.Create(context.Background(), validOrderInput())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.NumeroOrden != want {
				t.Fatalf("expected numero_orden %d, got %d", want, res.NumeroOrden)
			}
		}
	})
}

func TestWorkOrderUseCase_ListAll(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListAll(context.Background()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("joins each distinct neighbor once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, neighborRepo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{
			{ID: "o-1", NeighborID: "n-1"},
			{ID: "o-2", NeighborID: "n-1"},
			{ID: "o-3", NeighborID: "n-2"},
		}, nil)
		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1", Name: "Ana"}, nil).Times(1)
		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-2").Return(entities.Neighbor{}, nil).Times(1)

		orders, err := uc.ListAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(orders))
		}
		if orders[0].Neighbor == nil || orders[1].Neighbor == nil || orders[0].Neighbor.Name != "Ana" {
			t.Fatalf("expected neighbor joined on first two orders")
		}
		if orders[2].Neighbor != nil {
			t.Fatalf("expected nil neighbor for vanished reference")
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.WorkOrder{}, nil)

		if _, err := uc.GetByID(context.Background(), "o-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success with join", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, neighborRepo)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.WorkOrder{ID: "o-1", NeighborID: "n-1"}, nil)
		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-1").Return(entities.Neighbor{ID: "n-1", Name: "Ana"}, nil)

		res, err := uc.GetByID(context.Background(), "o-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Neighbor == nil || res.Neighbor.Name != "Ana" {
			t.Fatalf("expected joined neighbor, got %+v", res.Neighbor)
		}
	})
}

func TestWorkOrderUseCase_Update(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("empty patch", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{})
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		bad := entities.WorkOrderStatus("archived")
		_, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{Status: &bad})
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("blank service type", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		_, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{ServiceType: strPtr("  ")})
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("reassigned neighbor must resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		neighborRepo := mock_interfaces.NewMockINeighborRepository(ctrl)
		uc := NewWorkOrderUseCase(nil, neighborRepo)

		neighborRepo.EXPECT().GetByID(gomock.Any(), "n-9").Return(entities.Neighbor{}, nil)

		_, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{NeighborID: strPtr("n-9")})
		if !errors.Is(err, ErrInvalidWorkOrder) {
			t.Fatalf("expected ErrInvalidWorkOrder, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).Return(entities.WorkOrder{}, nil)

		_, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{ServiceType: strPtr("inspection")})
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success keeps numero orden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		stored := entities.WorkOrder{ID: "o-1", NumeroOrden: 5, ServiceType: "inspection"}
		repo.EXPECT().Update(gomock.Any(), "o-1", gomock.Any()).Return(stored, nil)

		res, err := uc.Update(context.Background(), "o-1", entities.WorkOrderPatch{ServiceType: strPtr("inspection")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NumeroOrden != 5 {
			t.Fatalf("expected numero_orden unchanged at 5, got %d", res.NumeroOrden)
		}
	})
}

func TestWorkOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "o-1").Return(false, nil)

		if err := uc.Delete(context.Background(), "o-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().Delete(gomock.Any(), "o-1").Return(true, nil)

		if err := uc.Delete(context.Background(), " o-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_AppendVisit(t *testing.T) {
	validVisit := func() entities.Visit {
		return entities.Visit{
			Date:            time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
			Observations:    "bait stations placed",
			ProductQuantity: 2.5,
			ProductType:     "rodenticide",
			Technicians:     []string{"Carlos"},
		}
	}

	t.Run("missing date", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		v := validVisit()
		v.Date = time.Time{}
		if _, err := uc.AppendVisit(context.Background(), "o-1", v); !errors.Is(err, ErrInvalidVisit) {
			t.Fatalf("expected ErrInvalidVisit, got %v", err)
		}
	})

	t.Run("missing observations", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		v := validVisit()
		v.Observations = "  "
		if _, err := uc.AppendVisit(context.Background(), "o-1", v); !errors.Is(err, ErrInvalidVisit) {
			t.Fatalf("expected ErrInvalidVisit, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		v := validVisit()
		v.ProductQuantity = 0
		if _, err := uc.AppendVisit(context.Background(), "o-1", v); !errors.Is(err, ErrInvalidVisit) {
			t.Fatalf("expected ErrInvalidVisit, got %v", err)
		}
	})

	t.Run("missing product type", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil, nil)
		v := validVisit()
		v.ProductType = ""
		if _, err := uc.AppendVisit(context.Background(), "o-1", v); !errors.Is(err, ErrInvalidVisit) {
			t.Fatalf("expected ErrInvalidVisit, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().AppendVisit(gomock.Any(), "o-1", gomock.Any()).Return(entities.WorkOrder{}, nil)

		if _, err := uc.AppendVisit(context.Background(), "o-1", validVisit()); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("empty technician list allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		v := validVisit()
		v.Technicians = nil
		repo.EXPECT().AppendVisit(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, got entities.Visit) (entities.WorkOrder, error) {
				if got.Technicians == nil || len(got.Technicians) != 0 {
					t.Fatalf("expected empty technician list, got %+v", got.Technicians)
				}
				return entities.WorkOrder{ID: id, Visits: []entities.Visit{got}}, nil
			},
		)

		res, err := uc.AppendVisit(context.Background(), "o-1", v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Visits) != 1 {
			t.Fatalf("expected 1 visit, got %d", len(res.Visits))
		}
	})

	t.Run("append preserves prior visits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		prior := entities.Visit{Date: time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC), Observations: "first pass", ProductQuantity: 1, ProductType: "gel", Technicians: []string{"Lucia"}}
		v := validVisit()
		repo.EXPECT().AppendVisit(gomock.Any(), "o-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, got entities.Visit) (entities.WorkOrder, error) {
				return entities.WorkOrder{ID: id, Visits: []entities.Visit{prior, got}}, nil
			},
		)

		res, err := uc.AppendVisit(context.Background(), "o-1", v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Visits) != 2 || res.Visits[0].Observations != "first pass" || res.Visits[1].Observations != v.Observations {
			t.Fatalf("unexpected visit sequence: %+v", res.Visits)
		}
	})
}

func TestWorkOrderUseCase_Complete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		repo.EXPECT().SetStatus(gomock.Any(), "o-1", entities.WorkOrderStatusCompleted).Return(entities.WorkOrder{}, nil)

		if _, err := uc.Complete(context.Background(), "o-1"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, nil)

		done := entities.WorkOrder{ID: "o-1", Status: entities.WorkOrderStatusCompleted}
		repo.EXPECT().SetStatus(gomock.Any(), "o-1", entities.WorkOrderStatusCompleted).Return(done, nil).Times(2)

		for i := 0; i < 2; i++ {
			res, err := uc.Complete(context.Background(), "o-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != entities.WorkOrderStatusCompleted {
				t.Fatalf("expected completed, got %s", res.Status)
			}
		}
	})
}
