package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

type fakeRepository struct {
	plans         map[uint]*models.Plan
	promos        map[string]*models.PromoCode
	orders        map[string]*models.PaymentOrder
	subscriptions map[uint]*models.Subscription

	upsertFailures int
	upsertCalls    int
	consumeCalls   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		plans:         make(map[uint]*models.Plan),
		promos:        make(map[string]*models.PromoCode),
		orders:        make(map[string]*models.PaymentOrder),
		subscriptions: make(map[uint]*models.Subscription),
	}
}

func (f *fakeRepository) ListActivePlans() ([]models.Plan, error) {
	var out []models.Plan
	for _, p := range f.plans {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetPlan(id uint) (*models.Plan, error) {
	if p, ok := f.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) FindPromoCode(code string) (*models.PromoCode, error) {
	if p, ok := f.promos[code]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ConsumePromoCode(code string) error {
	f.consumeCalls++
	if p, ok := f.promos[code]; ok {
		p.UsedCount++
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepository) CreateOrder(order *models.PaymentOrder) error {
	cp := *order
	f.orders[order.GatewayOrderID] = &cp
	return nil
}

func (f *fakeRepository) GetOrderByGatewayID(gatewayOrderID string) (*models.PaymentOrder, error) {
	if o, ok := f.orders[gatewayOrderID]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) UpdateOrderStatus(gatewayOrderID, status string) error {
	if o, ok := f.orders[gatewayOrderID]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeRepository) UpsertSubscription(sub *models.Subscription) error {
	f.upsertCalls++
	if f.upsertFailures > 0 {
		f.upsertFailures--
		return errors.New("db write failed")
	}
	cp := *sub
	f.subscriptions[sub.UserID] = &cp
	return nil
}

func (f *fakeRepository) GetSubscriptionByUserID(userID uint) (*models.Subscription, error) {
	if s, ok := f.subscriptions[userID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeGateway struct {
	orders  int
	lastAmt int64
	err     error
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountPaise int64, currency, receipt string) (*GatewayOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.orders++
	f.lastAmt = amountPaise
	return &GatewayOrder{ID: "order_test_1", Amount: amountPaise, Currency: currency, Receipt: receipt, Status: "created"}, nil
}

func (f *fakeGateway) Key() string { return "rzp_test_key" }

func newTestService(repo *fakeRepository, gw *fakeGateway) *Service {
	svc := NewService(repo, gw, "test-secret")
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func seedPaidPlan(repo *fakeRepository) {
	repo.plans[2] = &models.Plan{
		ID:           2,
		Name:         "Pro",
		MonthlyPrice: "999",
		YearlyPrice:  "9990",
		IsActive:     true,
	}
}

func TestCreateOrder_PlanNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.CreateOrder(context.Background(), 1, 42, models.BillingCycleMonthly, ""); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound, got %v", err)
	}

	repo.plans[3] = &models.Plan{ID: 3, Name: "Retired", MonthlyPrice: "499", IsActive: false}
	if _, err := svc.CreateOrder(context.Background(), 1, 3, models.BillingCycleMonthly, ""); !errors.Is(err, ErrPlanNotFound) {
		t.Fatalf("expected ErrPlanNotFound for inactive plan, got %v", err)
	}
}

func TestCreateOrder_DiscountedAmount(t *testing.T) {
	repo := newFakeRepository()
	seedPaidPlan(repo)
	repo.promos["SAVE20"] = &models.PromoCode{Code: "SAVE20", DiscountPercent: 20, IsActive: true}
	gw := &fakeGateway{}
	svc := newTestService(repo, gw)

	res, err := svc.CreateOrder(context.Background(), 1, 2, models.BillingCycleMonthly, "save20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Free {
		t.Fatalf("expected a gateway order, got free result")
	}
	if res.Amount != 79920 {
		t.Fatalf("expected 79920 paise after 20%% discount, got %d", res.Amount)
	}
	if gw.lastAmt != 79920 {
		t.Fatalf("gateway saw amount %d, want 79920", gw.lastAmt)
	}
	if res.KeyID != "rzp_test_key" || res.OrderID == "" {
		t.Fatalf("incomplete order result: %+v", res)
	}

	stored, err := repo.GetOrderByGatewayID(res.OrderID)
	if err != nil {
		t.Fatalf("order not persisted: %v", err)
	}
	if stored.Status != models.OrderStatusCreated || stored.PromoCode != "SAVE20" {
		t.Fatalf("unexpected persisted order: %+v", stored)
	}
}

func TestCreateOrder_InvalidPromoAborts(t *testing.T) {
	repo := newFakeRepository()
	seedPaidPlan(repo)
	gw := &fakeGateway{}
	svc := newTestService(repo, gw)

	if _, err := svc.CreateOrder(context.Background(), 1, 2, models.BillingCycleMonthly, "NOPE"); !errors.Is(err, ErrInvalidPromoCode) {
		t.Fatalf("expected ErrInvalidPromoCode, got %v", err)
	}
	if gw.orders != 0 {
		t.Fatalf("gateway must not be contacted when the promo is invalid")
	}
}

func TestCreateOrder_FreePlanSkipsGateway(t *testing.T) {
	repo := newFakeRepository()
	repo.plans[1] = &models.Plan{ID: 1, Name: "Free", MonthlyPrice: "0", YearlyPrice: "0", IsActive: true}
	gw := &fakeGateway{err: errors.New("gateway must not be called")}
	svc := newTestService(repo, gw)

	res, err := svc.CreateOrder(context.Background(), 7, 1, models.BillingCycleMonthly, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Free {
		t.Fatalf("expected free result for zero amount")
	}

	sub, err := repo.GetSubscriptionByUserID(7)
	if err != nil {
		t.Fatalf("expected subscription to be activated: %v", err)
	}
	if sub.Status != models.SubscriptionStatusActive || sub.PlanID != 1 {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
}

func TestCreateOrder_FullDiscountSkipsGateway(t *testing.T) {
	repo := newFakeRepository()
	seedPaidPlan(repo)
	repo.promos["FREE100"] = &models.PromoCode{Code: "FREE100", DiscountPercent: 100, IsActive: true}
	gw := &fakeGateway{err: errors.New("gateway must not be called")}
	svc := newTestService(repo, gw)

	res, err := svc.CreateOrder(context.Background(), 9, 2, models.BillingCycleYearly, "FREE100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Free {
		t.Fatalf("expected fully discounted order to be free")
	}
	sub, err := repo.GetSubscriptionByUserID(9)
	if err != nil {
		t.Fatalf("expected subscription: %v", err)
	}
	if sub.BillingCycle != models.BillingCycleYearly {
		t.Fatalf("expected yearly cycle, got %q", sub.BillingCycle)
	}
}

func TestValidatePromoCode(t *testing.T) {
	repo := newFakeRepository()
	past := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.promos["SAVE20"] = &models.PromoCode{Code: "SAVE20", DiscountPercent: 20, IsActive: true}
	repo.promos["GONE"] = &models.PromoCode{Code: "GONE", DiscountPercent: 50, IsActive: true, ValidUntil: &past}
	repo.promos["MAXED"] = &models.PromoCode{Code: "MAXED", DiscountPercent: 10, IsActive: true, MaxUses: 2, UsedCount: 2}
	svc := newTestService(repo, &fakeGateway{})

	lower, err := svc.ValidatePromoCode("save20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upper, err := svc.ValidatePromoCode("  SAVE20 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lower.Code != upper.Code || lower.DiscountPercent != upper.DiscountPercent {
		t.Fatalf("case-insensitive lookups must agree: %+v vs %+v", lower, upper)
	}

	// validation never consumes
	if _, err := svc.ValidatePromoCode("SAVE20"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.promos["SAVE20"].UsedCount != 0 {
		t.Fatalf("validation must not consume the code")
	}

	for _, code := range []string{"GONE", "MAXED", "MISSING", ""} {
		if _, err := svc.ValidatePromoCode(code); !errors.Is(err, ErrInvalidPromoCode) {
			t.Fatalf("expected ErrInvalidPromoCode for %q, got %v", code, err)
		}
	}
}

func verifiedOrderFixture(repo *fakeRepository) VerifyInput {
	seedPaidPlan(repo)
	repo.orders["order_test_1"] = &models.PaymentOrder{
		UserID:         5,
		PlanID:         2,
		BillingCycle:   models.BillingCycleMonthly,
		AmountPaise:    99900,
		Currency:       "INR",
		GatewayOrderID: "order_test_1",
		Status:         models.OrderStatusCreated,
	}
	return VerifyInput{
		OrderID:   "order_test_1",
		PaymentID: "pay_test_1",
		Signature: PaymentSignature("order_test_1", "pay_test_1", "test-secret"),
	}
}

func TestVerifyPayment_Success(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	svc := newTestService(repo, &fakeGateway{})

	sub, err := svc.VerifyPayment(5, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Status != models.SubscriptionStatusActive || sub.PlanID != 2 {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
	wantEnd := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	if sub.CurrentPeriodEnd == nil || !sub.CurrentPeriodEnd.Equal(wantEnd) {
		t.Fatalf("expected period end %v, got %v", wantEnd, sub.CurrentPeriodEnd)
	}
	if repo.orders["order_test_1"].Status != models.OrderStatusVerified {
		t.Fatalf("expected order to be verified, got %q", repo.orders["order_test_1"].Status)
	}
}

func TestVerifyPayment_TamperedSignatureLeavesStateUntouched(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	in.Signature = "deadbeef"
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(5, in); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if _, err := repo.GetSubscriptionByUserID(5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("subscription must stay untouched on signature mismatch")
	}
	if repo.orders["order_test_1"].Status != models.OrderStatusFailed {
		t.Fatalf("expected order marked failed, got %q", repo.orders["order_test_1"].Status)
	}
}

func TestVerifyPayment_WrongTenant(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(99, in); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for another tenant's order, got %v", err)
	}
}

func TestVerifyPayment_WrongTenantCannotFailOrder(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	in.Signature = "deadbeef"
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(99, in); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if repo.orders["order_test_1"].Status != models.OrderStatusCreated {
		t.Fatalf("another tenant's bad signature must not touch the order, got status %q", repo.orders["order_test_1"].Status)
	}
}

func TestVerifyPayment_FailedOrderIsNotReplayable(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	repo.orders["order_test_1"].Status = models.OrderStatusFailed
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(5, in); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("expected ErrOrderClosed for a failed order, got %v", err)
	}
	if repo.orders["order_test_1"].Status != models.OrderStatusFailed {
		t.Fatalf("failed order must stay failed, got %q", repo.orders["order_test_1"].Status)
	}
	if _, err := repo.GetSubscriptionByUserID(5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("a failed order must never activate a subscription")
	}
}

func TestVerifyPayment_VerifiedOrderIsNotReplayable(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(5, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.VerifyPayment(5, in); !errors.Is(err, ErrOrderClosed) {
		t.Fatalf("expected ErrOrderClosed on replay, got %v", err)
	}
	if repo.upsertCalls != 1 {
		t.Fatalf("replay must not activate again, got %d upserts", repo.upsertCalls)
	}
}

func TestVerifyPayment_ActivationRetriesThenFails(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	repo.upsertFailures = activationAttempts
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(5, in); !errors.Is(err, ErrActivationFailed) {
		t.Fatalf("expected ErrActivationFailed, got %v", err)
	}
	if repo.upsertCalls != activationAttempts {
		t.Fatalf("expected %d upsert attempts, got %d", activationAttempts, repo.upsertCalls)
	}
}

func TestVerifyPayment_ActivationRecoversOnRetry(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	repo.upsertFailures = 1
	svc := newTestService(repo, &fakeGateway{})

	sub, err := svc.VerifyPayment(5, in)
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if sub.Status != models.SubscriptionStatusActive {
		t.Fatalf("unexpected subscription: %+v", sub)
	}
}

func TestVerifyPayment_ConsumesPromoOnce(t *testing.T) {
	repo := newFakeRepository()
	in := verifiedOrderFixture(repo)
	repo.orders["order_test_1"].PromoCode = "SAVE20"
	repo.promos["SAVE20"] = &models.PromoCode{Code: "SAVE20", DiscountPercent: 20, IsActive: true}
	svc := newTestService(repo, &fakeGateway{})

	if _, err := svc.VerifyPayment(5, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.consumeCalls != 1 || repo.promos["SAVE20"].UsedCount != 1 {
		t.Fatalf("expected exactly one consumption, calls=%d used=%d", repo.consumeCalls, repo.promos["SAVE20"].UsedCount)
	}
}
