package memory

import (
	"context"
	"reflect"
	"sync"
	"testing"

	domainErrors "github.com/polyforge/printdesk/internal/domain/errors"
	"github.com/polyforge/printdesk/internal/domain/model"
)

func strPtr(s string) *string { return &s }

func TestStoreCreateGetRoundTrip(t *testing.T) {
	store := New()
	draft := model.OrderDraft{
		Name:           "Ada",
		Phone:          "5551234567",
		DeliveryMethod: model.DeliveryMethodDelivery,
		StreetAddress:  strPtr("1 Infinite Loop"),
		Zip:            strPtr("95014"),
		WeightGrams:    35,
		PrintTime:      "1h 33m",
		BaseCost:       8.75,
		TotalCost:      8.75,
	}

	created, err := store.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected identifier to be assigned")
	}
	if created.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
	if created.UpdatedAt.Before(created.CreatedAt) {
		t.Fatal("updatedAt must not precede createdAt")
	}

	got, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestStoreGetIsIdempotent(t *testing.T) {
	store := New()
	created, err := store.Create(context.Background(), model.OrderDraft{Name: "Bob", Phone: "5550000000", DeliveryMethod: model.DeliveryMethodMeetup})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := store.Get(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("repeated get returned different records: %+v vs %+v", first, again)
		}
	}
}

func TestStoreGetUnknownIDReturnsNotFound(t *testing.T) {
	store := New()
	if _, err := store.Get(context.Background(), "missing"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreMeetupOrderKeepsAddressNil(t *testing.T) {
	store := New()
	created, err := store.Create(context.Background(), model.OrderDraft{Name: "Eve", Phone: "5559999999", DeliveryMethod: model.DeliveryMethodMeetup})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.StreetAddress != nil || created.City != nil || created.State != nil || created.Zip != nil {
		t.Fatalf("expected nil address fields, got %+v", created)
	}
	if created.Status != model.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", created.Status)
	}
}

func TestStoreUpdateMergesPatch(t *testing.T) {
	store := New()
	created, err := store.Create(context.Background(), model.OrderDraft{
		Name:           "Ada",
		Phone:          "5551234567",
		DeliveryMethod: model.DeliveryMethodMeetup,
		BaseCost:       8.75,
		TotalCost:      8.75,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	status := model.OrderStatusConfirmed
	total := 13.75
	updated, err := store.Update(context.Background(), created.ID, model.OrderPatch{Status: &status, TotalCost: &total})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != model.OrderStatusConfirmed {
		t.Fatalf("expected confirmed status, got %q", updated.Status)
	}
	if updated.TotalCost != 13.75 {
		t.Fatalf("expected total 13.75, got %v", updated.TotalCost)
	}
	if updated.Name != "Ada" || updated.Phone != "5551234567" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatal("updatedAt must move forward on mutation")
	}
}

func TestStoreUpdateUnknownIDReturnsNotFound(t *testing.T) {
	store := New()
	status := model.OrderStatusCompleted
	if _, err := store.Update(context.Background(), "missing", model.OrderPatch{Status: &status}); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreListReturnsAllOrders(t *testing.T) {
	store := New()
	ids := make(map[string]bool)
	for i := 0; i < 3; i++ {
		created, err := store.Create(context.Background(), model.OrderDraft{Name: "n", Phone: "5550000000", DeliveryMethod: model.DeliveryMethodMeetup})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		ids[created.ID] = true
	}

	orders, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for _, o := range orders {
		if !ids[o.ID] {
			t.Fatalf("unexpected order %q in list", o.ID)
		}
	}
}

func TestStoreConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	store := New()
	const n = 64

	var wg sync.WaitGroup
	idCh := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := store.Create(context.Background(), model.OrderDraft{Name: "c", Phone: "5550000000", DeliveryMethod: model.DeliveryMethodMeetup})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			idCh <- created.ID
		}()
	}
	wg.Wait()
	close(idCh)

	seen := make(map[string]bool)
	for id := range idCh {
		if seen[id] {
			t.Fatalf("duplicate identifier %q", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d unique identifiers, got %d", n, len(seen))
	}
}
