package warlon

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

const DefaultBaseURL = "https://customer.warloncatering.com"

// Client talks to the Warlon customer self-service REST API. The resty
// client keeps the session cookies, so one Client is one remote session.
type Client struct {
	http   *resty.Client
	authed atomic.Bool
}

var _ ports.CateringClient = (*Client)(nil)

// NewClient builds an unauthenticated client. Browser-shaped headers are
// required: the platform sits behind Cloudflare and rejects bare
// programmatic agents.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeaders(map[string]string{
			"Accept":          "application/json, text/plain, */*",
			"Accept-Language": "en-US,en;q=0.9",
			"User-Agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"Origin":          baseURL,
			"Referer":         baseURL + "/login",
		})

	return &Client{http: http}
}

type loginResponse struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	// Warm up the cookie jar; the API issues session cookies on the
	// login page. A failure here is not fatal.
	_, _ = c.http.R().SetContext(ctx).Get("/login")

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("login: unexpected status %d", resp.StatusCode())
	}

	var out loginResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return fmt.Errorf("login: decode response: %w", err)
	}

	// The platform signals success either through the message text or by
	// returning the user payload.
	msg := strings.ToLower(out.Message)
	if strings.Contains(msg, "success") || hasData(out.Data) {
		c.authed.Store(true)
		return nil
	}
	return fmt.Errorf("login: rejected: %s", out.Message)
}

func (c *Client) Authenticated() bool {
	return c.authed.Load()
}

func (c *Client) ListOrders(ctx context.Context) ([]ports.OrderSummary, error) {
	raw, err := c.fetchOrderList(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := make([]ports.OrderSummary, 0, len(raw))
	for _, o := range raw {
		summaries = append(summaries, ports.OrderSummary{
			ID:          o.orderID(),
			PackageName: o.PackageName,
		})
	}
	return summaries, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int) (*domain.PackageOrder, error) {
	if !c.Authenticated() {
		return nil, ports.ErrNotAuthenticated
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/customer-package-orders/" + strconv.Itoa(orderID))
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("get order %d: unexpected status %d", orderID, resp.StatusCode())
	}

	var env struct {
		Data rawOrderDetail `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("get order %d: decode response: %w", orderID, err)
	}

	order, err := env.Data.toDomain()
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return order, nil
}

func (c *Client) UpdateDelivery(ctx context.Context, upd ports.DeliveryUpdate) error {
	if !c.Authenticated() {
		return ports.ErrNotAuthenticated
	}

	notes := upd.Notes
	if notes == nil {
		notes = []string{}
	}

	payload := map[string]any{
		"packageOrderId":    strconv.Itoa(upd.OrderID),
		"orderGroupId":      fmt.Sprintf("%d-%d", upd.ScheduleID, upd.GroupID),
		"scheduledDate":     upd.Date.Format(domain.DateLayout),
		"customerAddressId": upd.AddressID,
		"mealType":          upd.MealType,
		"notes":             notes,
		"cutlery":           false,
		"deliveryTime":      upd.MealType.DeliveryWindow(),
		"historyNote":       "",
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Put("/api/customer-package-orders/edit-order")
	if err != nil {
		return fmt.Errorf("update delivery %d: %w", upd.GroupID, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("update delivery %d: unexpected status %d", upd.GroupID, resp.StatusCode())
	}
	return nil
}

func (c *Client) AvailableRestrictions(ctx context.Context) ([]domain.Restriction, error) {
	if !c.Authenticated() {
		return nil, ports.ErrNotAuthenticated
	}

	resp, err := c.http.R().SetContext(ctx).Get("/api/package-restrictions/available")
	if err != nil {
		return nil, fmt.Errorf("available restrictions: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("available restrictions: unexpected status %d", resp.StatusCode())
	}

	var env struct {
		Data []rawRestriction `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("available restrictions: decode response: %w", err)
	}

	out := make([]domain.Restriction, 0, len(env.Data))
	for _, r := range env.Data {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// UserRestrictions reads the customer's current restrictions. The
// platform has no dedicated endpoint; they ride along on the order list
// inside the embedded user object.
func (c *Client) UserRestrictions(ctx context.Context) ([]domain.Restriction, error) {
	raw, err := c.fetchOrderList(ctx)
	if err != nil {
		return nil, fmt.Errorf("user restrictions: %w", err)
	}
	if len(raw) == 0 || raw[0].User == nil {
		return []domain.Restriction{}, nil
	}

	out := make([]domain.Restriction, 0, len(raw[0].User.Restrictions))
	for _, r := range raw[0].User.Restrictions {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (c *Client) UpdateRestrictions(ctx context.Context, ids []int) (ports.RestrictionUpdateResult, error) {
	if !c.Authenticated() {
		return ports.RestrictionUpdateResult{}, ports.ErrNotAuthenticated
	}
	if ids == nil {
		ids = []int{}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"restrictionIds": ids}).
		Put("/api/users/restrictions-update")
	if err != nil {
		return ports.RestrictionUpdateResult{}, fmt.Errorf("update restrictions: %w", err)
	}
	if !resp.IsSuccess() {
		return ports.RestrictionUpdateResult{
			Message: fmt.Sprintf("update restrictions: unexpected status %d", resp.StatusCode()),
		}, nil
	}

	var env struct {
		Message string           `json:"message"`
		Data    []rawRestriction `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return ports.RestrictionUpdateResult{}, fmt.Errorf("update restrictions: decode response: %w", err)
	}

	updated := make([]domain.Restriction, 0, len(env.Data))
	for _, r := range env.Data {
		updated = append(updated, r.toDomain())
	}

	msg := env.Message
	if msg == "" {
		msg = "Restrictions updated"
	}
	return ports.RestrictionUpdateResult{
		Success:      true,
		Message:      msg,
		Restrictions: updated,
	}, nil
}

// fetchOrderList handles the doubly-nested list envelope the platform
// returns: {"data": {"data": [...], "total": N}} on current deployments,
// {"data": [...]} on older ones.
func (c *Client) fetchOrderList(ctx context.Context) ([]rawOrderSummary, error) {
	if !c.Authenticated() {
		return nil, ports.ErrNotAuthenticated
	}

	resp, err := c.http.R().SetContext(ctx).Get("/api/customer-package-orders")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var page struct {
		Data []rawOrderSummary `json:"data"`
	}
	if err := json.Unmarshal(env.Data, &page); err == nil && page.Data != nil {
		return page.Data, nil
	}

	var list []rawOrderSummary
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, fmt.Errorf("decode order list: %w", err)
	}
	return list, nil
}

func hasData(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null" && s != "{}"
}
