// Package sdk exposes typed, high level access to the FastBag admin API:
// per-resource list adapters for the view model plus the named back-office
// verbs (vendor approval, order status, notifications).
package sdk

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/display"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	client "github.com/codeedexprojects/fastbag-admin-sub001/sdk/client"
)

// ServiceConfig configures a Service.
type ServiceConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  *zap.SugaredLogger
}

// Service is the typed gateway every command goes through.
type Service struct {
	c   *client.Client
	log *zap.SugaredLogger
}

// New returns a Service initialized with the given configuration.
func New(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	opts := []client.Option{}
	if cfg.Token != "" {
		opts = append(opts, client.WithToken(cfg.Token))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, client.WithTimeout(cfg.Timeout))
	}
	return &Service{c: client.New(cfg.BaseURL, opts...), log: logger}
}

// Login exchanges credentials for a token pair and installs the token.
func (s *Service) Login(ctx context.Context, mobileNumber, password string) (Credentials, error) {
	creds, err := s.c.Login(ctx, mobileNumber, password)
	if err != nil {
		s.log.Errorw("login failed", "error", err)
		return Credentials{}, err
	}
	return creds, nil
}

func res[T listview.Row](s *Service, path string, echoes bool) *resource[T] {
	return &resource[T]{c: s.c, log: s.log, path: path, echoes: echoes}
}

func (s *Service) Categories() listview.Resource[Category] {
	return res[Category](s, "/adminapp/categories/", true)
}

func (s *Service) Subcategories() listview.Resource[Subcategory] {
	return res[Subcategory](s, "/adminapp/subcategories/", true)
}

func (s *Service) Stores() listview.Resource[Store] {
	return res[Store](s, "/adminapp/stores/", true)
}

// Vendors' status endpoint answers with a bare 200, so edits refetch.
func (s *Service) Vendors() listview.Resource[Vendor] {
	return res[Vendor](s, "/adminapp/vendors/", false)
}

func (s *Service) Coupons() listview.Resource[Coupon] {
	return res[Coupon](s, "/adminapp/coupons/", true)
}

func (s *Service) Orders() listview.Resource[Order] {
	return &ordersResource{resource[Order]{c: s.c, log: s.log, path: "/adminapp/orders/", echoes: true}}
}

func (s *Service) BigBuyOrders() listview.Resource[BigBuyOrder] {
	return res[BigBuyOrder](s, "/adminapp/bigbuy-orders/", true)
}

// Products serves one vertical's catalog (grocery, food or fashion).
func (s *Service) Products(v ProductVertical) listview.Resource[Product] {
	return res[Product](s, "/adminapp/products/"+string(v)+"/", true)
}

func (s *Service) Colors() listview.Resource[Color] {
	return res[Color](s, "/adminapp/colors/", true)
}

func (s *Service) CarouselAds() listview.Resource[CarouselAd] {
	return res[CarouselAd](s, "/adminapp/carousel/", true)
}

func (s *Service) SubAdmins() listview.Resource[SubAdmin] {
	return res[SubAdmin](s, "/adminapp/subadmins/", false)
}

func (s *Service) Customers() listview.Resource[Customer] {
	return res[Customer](s, "/adminapp/customers/", false)
}

func (s *Service) Notifications() listview.Resource[Notification] {
	return res[Notification](s, "/adminapp/notifications/", true)
}

func (s *Service) DeliveryAgents() listview.Resource[DeliveryAgent] {
	return res[DeliveryAgent](s, "/adminapp/delivery-agents/", false)
}

// AdminProfile is the signed-in principal as the API reports it: the role
// plus the section allow-list the navigation filter runs on.
type AdminProfile struct {
	Name     string   `json:"name,omitempty"`
	Role     string   `json:"role"`
	Sections []string `json:"allowed_sections"`
}

// Me fetches the signed-in principal's role and section allow-list. It is
// called once after login; the result is persisted with the profile.
func (s *Service) Me(ctx context.Context) (AdminProfile, error) {
	var out AdminProfile
	if err := s.c.Get(ctx, "/adminapp/profile/", &out); err != nil {
		s.log.Errorw("profile fetch failed", "error", err)
		return AdminProfile{}, err
	}
	return out, nil
}

// ApproveVendor moves a pending vendor to APPROVED.
func (s *Service) ApproveVendor(ctx context.Context, id string) error {
	return s.setVendorStatus(ctx, id, display.VendorApproved)
}

// RejectVendor moves a pending vendor to REJECTED.
func (s *Service) RejectVendor(ctx context.Context, id string) error {
	return s.setVendorStatus(ctx, id, display.VendorRejected)
}

func (s *Service) setVendorStatus(ctx context.Context, id string, st display.VendorStatus) error {
	p := "/adminapp/vendors/" + id + "/status/"
	if err := s.c.Patch(ctx, p, map[string]any{"status": string(st)}, nil); err != nil {
		s.log.Errorw("vendor status update failed", "vendor", id, "status", st, "error", err)
		return err
	}
	return nil
}

// SetOrderStatus updates one order's status and returns the echoed record.
func (s *Service) SetOrderStatus(ctx context.Context, id string, st display.OrderStatus) (*Order, error) {
	var out Order
	p := "/adminapp/orders/" + id + "/"
	if err := s.c.Patch(ctx, p, map[string]any{"order_status": string(st)}, &out); err != nil {
		s.log.Errorw("order status update failed", "order", id, "status", st, "error", err)
		return nil, err
	}
	return &out, nil
}

// SetCustomerActive enables or disables a shopper account.
func (s *Service) SetCustomerActive(ctx context.Context, id string, active bool) error {
	p := "/adminapp/customers/" + id + "/"
	if err := s.c.Patch(ctx, p, map[string]any{"is_active": active}, nil); err != nil {
		s.log.Errorw("customer toggle failed", "customer", id, "error", err)
		return err
	}
	return nil
}

// SendNotification broadcasts a message to the given audience.
func (s *Service) SendNotification(ctx context.Context, title, body, audience string) error {
	payload := map[string]any{"title": title, "description": body}
	if audience != "" {
		payload["audience"] = audience
	}
	if err := s.c.Post(ctx, "/adminapp/notifications/", payload, nil); err != nil {
		s.log.Errorw("notification send failed", "title", title, "error", err)
		return err
	}
	return nil
}

// CreateCoupon registers a new discount code.
func (s *Service) CreateCoupon(ctx context.Context, c Coupon) (*Coupon, error) {
	var out Coupon
	if err := s.c.Post(ctx, "/adminapp/coupons/", c, &out); err != nil {
		s.log.Errorw("coupon create failed", "code", c.Code, "error", err)
		return nil, err
	}
	return &out, nil
}

// CreateSubAdmin registers a restricted principal with its section
// allow-list.
func (s *Service) CreateSubAdmin(ctx context.Context, sa SubAdmin, password string) error {
	payload := map[string]any{
		"mobile_number":    sa.MobileNumber,
		"name":             sa.Name,
		"email":            sa.Email,
		"allowed_sections": sa.Sections,
		"password":         password,
	}
	if err := s.c.Post(ctx, "/adminapp/subadmins/", payload, nil); err != nil {
		s.log.Errorw("subadmin create failed", "mobile", sa.MobileNumber, "error", err)
		return err
	}
	return nil
}

// CreateCarouselAd uploads a banner with its image attached as a multipart
// file part.
func (s *Service) CreateCarouselAd(ctx context.Context, fields map[string]string, imageName string, image io.Reader) error {
	if err := s.c.PostMultipart(ctx, "/adminapp/carousel/", fields, "image", imageName, image, nil); err != nil {
		s.log.Errorw("carousel upload failed", "error", err)
		return err
	}
	return nil
}
