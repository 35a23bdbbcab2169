package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"bahia_gestao/internal/domain/entities"
	"bahia_gestao/internal/usecase/interfaces"
)

var (
	ErrBudgetPaymentNotFound          = fmt.Errorf("budget payment %w", entities.ErrNotFound)
	ErrInvalidPaymentBudgetID         = fmt.Errorf("%w: invalid budget_id", entities.ErrValidation)
	ErrInvalidMPPayload               = fmt.Errorf("%w: invalid mercado pago payload", entities.ErrValidation)
	ErrBudgetNotApproved              = fmt.Errorf("%w: budget not approved", entities.ErrInvalidTransition)
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions come from configuration. In mock mode the payload checks are
// relaxed and the gateway answers locally.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IBudgetPaymentUseCase charges an approved budget through Mercado Pago.
// An approved charge converts the budget.
type IBudgetPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPayment, error)
	ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error)
	Latest(ctx context.Context, budgetID string) (entities.BudgetPayment, error)
}

type BudgetPaymentUseCase struct {
	repo       interfaces.IBudgetPaymentRepository
	budgetRepo interfaces.IBudgetRepository
	gateway    interfaces.IPaymentGateway
	opts       PaymentOptions
}

var _ IBudgetPaymentUseCase = (*BudgetPaymentUseCase)(nil)

func NewBudgetPaymentUseCase(repo interfaces.IBudgetPaymentRepository, budgetRepo interfaces.IBudgetRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BudgetPaymentUseCase {
	return &BudgetPaymentUseCase{repo: repo, budgetRepo: budgetRepo, gateway: gateway, opts: opts}
}

func (u *BudgetPaymentUseCase) CreateAndApprove(ctx context.Context, budgetID string, mpPayload json.RawMessage) (entities.BudgetPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_budget_id=%q payload_len=%d", budgetID, len(mpPayload))
	mockMode := u.opts.MockMode
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return entities.BudgetPayment{}, ErrInvalidPaymentBudgetID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload budget_id=%s", budgetID)
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.BudgetPayment{}, errors.New("payment gateway not configured")
	}
	if u.budgetRepo == nil {
		return entities.BudgetPayment{}, errors.New("budget repository not configured")
	}

	b, err := u.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return entities.BudgetPayment{}, logPersistence("payment", "load budget", err)
	}
	if b.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetNotFound
	}
	if b.Status != entities.BudgetStatusApproved {
		log.Printf("[payment][usecase] budget not approved budget_id=%s status=%s", budgetID, b.Status)
		return entities.BudgetPayment{}, ErrBudgetNotApproved
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.BudgetPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			u.normalizeSandboxPayer(reqMap)
			u.ensurePayerDefaults(reqMap)
			if !hasPayer(reqMap) {
				log.Printf("[payment][usecase] missing/invalid payer budget_id=%s", budgetID)
				return entities.BudgetPayment{}, ErrInvalidMPPayload
			}
		}
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = budgetID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Orçamento %s", budgetID)
		}
		// The amount always comes from the stored budget.
		reqMap["transaction_amount"] = b.TotalValue
		if raw, err := json.Marshal(reqMap); err == nil {
			mpPayload = raw
		}
	} else if !mockMode {
		return entities.BudgetPayment{}, ErrInvalidMPPayload
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed budget_id=%s err=%v", budgetID, err)
		return entities.BudgetPayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway success budget_id=%s provider_payment_id=%s provider_status=%s", budgetID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_id=%s err=%v", budgetID, err)
	}

	p := entities.BudgetPayment{
		ID:                 providerPaymentID,
		BudgetID:           budgetID,
		Amount:             b.TotalValue,
		Date:               clock(),
		Status:             paymentStatus(providerStatus),
		ProviderStatus:     providerStatus,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.BudgetPayment{}, logPersistence("payment", "create", err)
	}

	if created.Status == entities.PaymentStatusAprovado {
		_, err := u.budgetRepo.UpdateStatus(ctx, budgetID, entities.BudgetStatusConverted, []entities.BudgetStatus{entities.BudgetStatusApproved})
		if err != nil {
			// The charge is recorded; conversion can be retried through the convert endpoint.
			log.Printf("[payment][usecase] budget conversion failed budget_id=%s err=%v", budgetID, err)
		}
	}
	log.Printf("[payment][usecase] create-and-approve success budget_id=%s payment_id=%s status=%s", budgetID, created.ID, created.Status)
	return created, nil
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(providerStatus) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendente
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *BudgetPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.opts.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *BudgetPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func gatewayMessage(err error) string {
	if err == nil {
		return ""
	}
	return strings.ToLower(err.Error())
}

func isGatewayBadRequest(err error) bool {
	msg := gatewayMessage(err)
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := gatewayMessage(err)
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := gatewayMessage(err)
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := gatewayMessage(err)
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BudgetPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BudgetPayment, error) {
	id, err := requireID(id)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPayment{}, logPersistence("payment", "get", err)
	}
	if p.ID == "" {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	return p, nil
}

func (u *BudgetPaymentUseCase) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetPayment, error) {
	budgetID = strings.TrimSpace(budgetID)
	if budgetID == "" {
		return nil, ErrInvalidPaymentBudgetID
	}
	payments, err := u.repo.ListByBudgetID(ctx, budgetID)
	return payments, logPersistence("payment", "list", err)
}

// Latest returns the most recent payment of a budget.
func (u *BudgetPaymentUseCase) Latest(ctx context.Context, budgetID string) (entities.BudgetPayment, error) {
	payments, err := u.ListByBudgetID(ctx, budgetID)
	if err != nil {
		return entities.BudgetPayment{}, err
	}
	if len(payments) == 0 {
		return entities.BudgetPayment{}, ErrBudgetPaymentNotFound
	}
	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	return latest, nil
}
