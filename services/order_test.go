package services

import (
	"errors"
	"testing"

	"github.com/mazin-goub/Hameed/models"
)

func TestValidStatusTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusAccepted, true},
		{models.OrderStatusPending, models.OrderStatusRejected, true},
		{models.OrderStatusPending, models.OrderStatusCompleted, false},
		{models.OrderStatusPending, models.OrderStatusPending, false},
		{models.OrderStatusAccepted, models.OrderStatusCompleted, true},
		{models.OrderStatusAccepted, models.OrderStatusRejected, false},
		{models.OrderStatusAccepted, models.OrderStatusPending, false},
		{models.OrderStatusRejected, models.OrderStatusCompleted, false},
		{models.OrderStatusRejected, models.OrderStatusPending, false},
		{models.OrderStatusCompleted, models.OrderStatusPending, false},
		{models.OrderStatusCompleted, models.OrderStatusAccepted, false},
		{"", models.OrderStatusAccepted, false},
		{models.OrderStatusPending, "", false},
	}
	for _, tt := range tests {
		got := ValidStatusTransition(tt.from, tt.to)
		if got != tt.want {
			t.Errorf("ValidStatusTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func deliveryInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Test Customer",
		CustomerPhone: "0100000000",
		OrderType:     models.OrderTypeDelivery,
		Items: []models.OrderLine{
			{Name: "Test Burger", Category: "burger", Quantity: 2, Customizations: []string{"Extra Cheese"}, Price: 24},
		},
		TotalAmount: 24,
	}
}

func cateringInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:  "Test Customer",
		CustomerPhone: "0100000000",
		OrderType:     models.OrderTypeCatering,
		EventDate:     "2026-10-01",
		EventLocation: "Cairo",
		GuestCount:    20,
		CateringItems: []models.CateringLine{
			{Item: "Desserts", Quantity: 5, PerServing: 8},
		},
		TotalAmount: 340,
	}
}

func TestCreateOrderForcesPendingAndStampsOwner(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	id, err := svc.Create(customerActor, deliveryInput())
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	var order models.Order
	if err := svc.DB.First(&order, id).Error; err != nil {
		t.Fatal(err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status = %q, want %q", order.Status, models.OrderStatusPending)
	}
	if order.UserID != customerActor.UserID {
		t.Errorf("UserID = %d, want %d", order.UserID, customerActor.UserID)
	}
	if order.CustomerEmail != customerActor.Email {
		t.Errorf("CustomerEmail = %q, want session email %q", order.CustomerEmail, customerActor.Email)
	}
	if order.TotalAmount != 24 {
		t.Errorf("TotalAmount = %v, want 24", order.TotalAmount)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	tests := []struct {
		name   string
		mutate func(*CreateOrderInput)
		input  func() CreateOrderInput
	}{
		{"missing customer name", func(in *CreateOrderInput) { in.CustomerName = "" }, deliveryInput},
		{"missing phone", func(in *CreateOrderInput) { in.CustomerPhone = "" }, deliveryInput},
		{"unknown order type", func(in *CreateOrderInput) { in.OrderType = "pickup" }, deliveryInput},
		{"delivery without items", func(in *CreateOrderInput) { in.Items = nil }, deliveryInput},
		{"zero quantity line", func(in *CreateOrderInput) { in.Items[0].Quantity = 0 }, deliveryInput},
		{"negative total", func(in *CreateOrderInput) { in.TotalAmount = -1 }, deliveryInput},
		{"catering without event date", func(in *CreateOrderInput) { in.EventDate = "" }, cateringInput},
		{"catering without location", func(in *CreateOrderInput) { in.EventLocation = "" }, cateringInput},
		{"catering zero guests", func(in *CreateOrderInput) { in.GuestCount = 0 }, cateringInput},
		{"catering zero-quantity line", func(in *CreateOrderInput) { in.CateringItems[0].Quantity = 0 }, cateringInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input()
			tt.mutate(&input)
			if _, err := svc.Create(customerActor, input); !errors.Is(err, ErrValidation) {
				t.Errorf("Create(%s) error = %v, want ErrValidation", tt.name, err)
			}
		})
	}

	if _, err := svc.Create(models.Actor{}, deliveryInput()); !errors.Is(err, ErrForbidden) {
		t.Errorf("Create without session error = %v, want ErrForbidden", err)
	}
}

func TestSetStatusTransitions(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	id, err := svc.Create(customerActor, deliveryInput())
	if err != nil {
		t.Fatal(err)
	}

	// pending -> completed skips accepted
	if err := svc.SetStatus(adminActor, id, models.OrderStatusCompleted); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("pending->completed error = %v, want ErrInvalidTransition", err)
	}

	if err := svc.SetStatus(adminActor, id, models.OrderStatusAccepted); err != nil {
		t.Fatalf("pending->accepted error = %v", err)
	}
	if err := svc.SetStatus(adminActor, id, models.OrderStatusCompleted); err != nil {
		t.Fatalf("accepted->completed error = %v", err)
	}

	// completed is terminal
	if err := svc.SetStatus(adminActor, id, models.OrderStatusPending); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("completed->pending error = %v, want ErrInvalidTransition", err)
	}

	if err := svc.SetStatus(adminActor, id, "shipped"); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown status error = %v, want ErrValidation", err)
	}

	if err := svc.SetStatus(adminActor, 9999, models.OrderStatusAccepted); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing order error = %v, want ErrNotFound", err)
	}
}

func TestSetStatusByNonAdminLeavesOrderUnchanged(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	id, err := svc.Create(customerActor, deliveryInput())
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetStatus(customerActor, id, models.OrderStatusAccepted); !errors.Is(err, ErrForbidden) {
		t.Fatalf("SetStatus by non-admin error = %v, want ErrForbidden", err)
	}

	var order models.Order
	if err := svc.DB.First(&order, id).Error; err != nil {
		t.Fatal(err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("Status after forbidden attempt = %q, want pending", order.Status)
	}
}

func TestListMineReturnsOwnOrdersNewestFirst(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	first, err := svc.Create(customerActor, deliveryInput())
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(customerActor, cateringInput())
	if err != nil {
		t.Fatal(err)
	}
	other := models.Actor{UserID: 3, Email: "other@example.com", Role: "user"}
	if _, err := svc.Create(other, deliveryInput()); err != nil {
		t.Fatal(err)
	}

	mine, err := svc.ListMine(customerActor)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Fatalf("ListMine = %d orders, want 2", len(mine))
	}
	if mine[0].ID != second || mine[1].ID != first {
		t.Errorf("ListMine order = [%d, %d], want newest first [%d, %d]",
			mine[0].ID, mine[1].ID, second, first)
	}

	all, err := svc.ListAll(adminActor)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll = %d orders, want 3", len(all))
	}

	if _, err := svc.ListAll(customerActor); !errors.Is(err, ErrForbidden) {
		t.Errorf("ListAll by non-admin error = %v, want ErrForbidden", err)
	}
}

func TestCountOpenOrders(t *testing.T) {
	svc := NewOrderService(newTestDB(t))

	id, err := svc.Create(customerActor, deliveryInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(customerActor, cateringInput()); err != nil {
		t.Fatal(err)
	}

	count, err := svc.CountOpen(adminActor)
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("CountOpen = %d, want 2", count)
	}

	if err := svc.SetStatus(adminActor, id, models.OrderStatusRejected); err != nil {
		t.Fatal(err)
	}
	count, err = svc.CountOpen(adminActor)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("CountOpen after reject = %d, want 1", count)
	}

	if _, err := svc.CountOpen(customerActor); !errors.Is(err, ErrForbidden) {
		t.Errorf("CountOpen by non-admin error = %v, want ErrForbidden", err)
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		deltas   []float64
		quantity int
		want     float64
	}{
		{"burger with extra cheese x2", 10, []float64{2}, 2, 24},
		{"no customizations", 25, nil, 1, 25},
		{"free customization", 20, []float64{0}, 3, 60},
		{"multiple deltas", 22, []float64{1, 2}, 2, 50},
	}
	for _, tt := range tests {
		if got := LineTotal(tt.base, tt.deltas, tt.quantity); got != tt.want {
			t.Errorf("LineTotal(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCateringTotal(t *testing.T) {
	lines := []models.CateringLine{{Item: "Desserts", Quantity: 5, PerServing: 8}}
	if got := CateringTotal(20, 15, lines); got != 340 {
		t.Errorf("CateringTotal = %v, want 340", got)
	}
	if got := CateringTotal(10, 15, nil); got != 150 {
		t.Errorf("CateringTotal without lines = %v, want 150", got)
	}
}

// End-to-end: admin adds an item, the customer orders two with a priced
// customization, and the submitted total matches the recomputed one.
func TestDeliveryOrderEndToEnd(t *testing.T) {
	db := newTestDB(t)
	menuSvc := NewMenuService(db)
	orderSvc := NewOrderService(db)

	_, err := menuSvc.Create(adminActor, CreateMenuItemInput{
		Name:        "Test Burger",
		Category:    "burger",
		Description: "Burger for the end-to-end scenario",
		BasePrice:   10,
		Customizations: []models.Customization{
			{Name: "Extra Cheese", Price: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	lineTotal := LineTotal(10, []float64{2}, 2)
	if lineTotal != 24 {
		t.Fatalf("expected line total 24, got %v", lineTotal)
	}

	input := deliveryInput()
	input.Items[0].Price = lineTotal
	input.TotalAmount = lineTotal

	id, err := orderSvc.Create(customerActor, input)
	if err != nil {
		t.Fatalf("Create error = %v", err)
	}

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		t.Fatal(err)
	}
	if order.TotalAmount != 24 {
		t.Errorf("TotalAmount = %v, want 24", order.TotalAmount)
	}
}
