package service

import (
	"context"
	"errors"
	"testing"

	"github.com/welcomehome/inventory/internal/model"
)

func TestUserOrdersVisibility(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	staff := login(t, app, "alice", "pw", model.RoleStaff)
	bob := login(t, app, "bob", "pw", model.RoleClient)
	carol := login(t, app, "carol", "pw", model.RoleClient)

	if _, err := app.StartOrder(ctx, staff, "bob"); err != nil {
		t.Fatalf("start order for bob: %v", err)
	}
	if _, err := app.StartOrder(ctx, staff, "carol"); err != nil {
		t.Fatalf("start order for carol: %v", err)
	}

	// Clients see only their own orders.
	orders, err := app.UserOrders(ctx, bob)
	if err != nil {
		t.Fatalf("bob orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ClientUsername != "bob" {
		t.Fatalf("bob sees %v, want exactly his own order", orders)
	}

	// Elevated roles see everything.
	orders, err = app.UserOrders(ctx, staff)
	if err != nil {
		t.Fatalf("staff orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("staff sees %d orders, want 2", len(orders))
	}

	orders, err = app.UserOrders(ctx, carol)
	if err != nil {
		t.Fatalf("carol orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ClientUsername != "carol" {
		t.Fatalf("carol sees %v, want exactly her own order", orders)
	}

	if _, err := app.UserOrders(ctx, nil); !errors.Is(err, ErrAuthenticationRequired) {
		t.Fatalf("nil session: got %v, want ErrAuthenticationRequired", err)
	}
}

func TestFindItemLocationsUnknownItem(t *testing.T) {
	app := newTestApp(t)
	locs, err := app.FindItemLocations(context.Background(), "missing")
	if err != nil {
		t.Fatalf("locations: %v", err)
	}
	if len(locs) != 0 {
		t.Fatalf("got %v for unknown item, want empty", locs)
	}
}

func TestCategories(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	staff := login(t, app, "alice", "pw", model.RoleStaff)
	client := login(t, app, "bob", "pw", model.RoleClient)

	cat := model.Category{Name: "Furniture", Subcategory: "Tables"}
	if err := app.AddCategory(ctx, staff, &cat); err != nil {
		t.Fatalf("add category: %v", err)
	}
	if cat.CategoryID == 0 {
		t.Fatal("expected the generated category ID to be filled in")
	}

	if err := app.AddCategory(ctx, client, &model.Category{Name: "Nope"}); !errors.Is(err, ErrNotAuthorized) {
		t.Fatalf("client add: got %v, want ErrNotAuthorized", err)
	}

	cats, err := app.Categories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Furniture" {
		t.Fatalf("unexpected categories %v", cats)
	}
}
