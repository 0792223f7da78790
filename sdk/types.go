package sdk

import (
	"strings"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/display"
	client "github.com/codeedexprojects/fastbag-admin-sub001/sdk/client"
)

// ID is the opaque row identity as seen by the view layer. The API mixes
// numeric ids and string ids (sub-admin identity is a mobile number); the
// client boundary normalizes both to strings.
type ID = client.FlexID

// Credentials is the login endpoint's token pair.
type Credentials = client.Credentials

// Category is one top-level storefront category.
type Category struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	StoreType string `json:"store_type"`
	Image     string `json:"category_image,omitempty"`
	Enabled   bool   `json:"enable_category"`
}

func (c Category) RowID() string      { return c.ID.String() }
func (c Category) SearchText() string { return c.Name + " " + c.StoreType }

// Subcategory belongs to one Category.
type Subcategory struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	CategoryID   ID     `json:"category"`
	CategoryName string `json:"category_name,omitempty"`
	Enabled      bool   `json:"enable_subcategory"`
}

func (s Subcategory) RowID() string      { return s.ID.String() }
func (s Subcategory) SearchText() string { return s.Name + " " + s.CategoryName }

// Store is one storefront operated by a vendor.
type Store struct {
	ID           ID     `json:"id"`
	Name         string `json:"store_name"`
	StoreType    string `json:"store_type"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email,omitempty"`
	City         string `json:"city,omitempty"`
	Logo         string `json:"store_logo,omitempty"`
	Enabled      bool   `json:"is_active"`
}

func (s Store) RowID() string      { return s.ID.String() }
func (s Store) SearchText() string { return s.Name + " " + s.City + " " + s.MobileNumber }

// Vendor is one onboarded (or onboarding) seller.
type Vendor struct {
	ID           ID                   `json:"id"`
	OwnerName    string               `json:"owner_name"`
	BusinessName string               `json:"business_name"`
	MobileNumber string               `json:"mobile_number"`
	Email        string               `json:"email,omitempty"`
	City         string               `json:"city,omitempty"`
	Status       display.VendorStatus `json:"status"`
	CreatedAt    string               `json:"created_at,omitempty"`
}

func (v Vendor) RowID() string { return v.ID.String() }
func (v Vendor) SearchText() string {
	return v.OwnerName + " " + v.BusinessName + " " + v.City + " " + v.MobileNumber
}

// Coupon is one discount code. Validity dates arrive as dd/mm/yyyy strings.
type Coupon struct {
	ID              ID      `json:"id"`
	Code            string  `json:"code"`
	DiscountPercent int     `json:"discount_percentage"`
	MinOrderAmount  float64 `json:"min_order_amount"`
	ValidFrom       string  `json:"valid_from"`
	ValidTo         string  `json:"valid_to"`
	Active          bool    `json:"is_active"`
}

func (c Coupon) RowID() string      { return c.ID.String() }
func (c Coupon) SearchText() string { return c.Code }

// Order is one customer order as the back office lists it.
type Order struct {
	ID            ID                  `json:"id"`
	OrderNumber   string              `json:"order_id"`
	CustomerName  string              `json:"customer_name"`
	StoreName     string              `json:"store_name"`
	TotalAmount   float64             `json:"total_amount"`
	Status        display.OrderStatus `json:"order_status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	PlacedAt      string              `json:"created_at,omitempty"`
}

func (o Order) RowID() string { return o.ID.String() }
func (o Order) SearchText() string {
	return o.OrderNumber + " " + o.CustomerName + " " + o.StoreName
}

// BigBuyOrder is one bulk purchase request.
type BigBuyOrder struct {
	ID           ID                  `json:"id"`
	CustomerName string              `json:"customer_name"`
	MobileNumber string              `json:"mobile_number"`
	ItemCount    int                 `json:"item_count"`
	TotalAmount  float64             `json:"total_amount"`
	Status       display.OrderStatus `json:"order_status"`
	RequiredDate string              `json:"required_date,omitempty"`
}

func (b BigBuyOrder) RowID() string      { return b.ID.String() }
func (b BigBuyOrder) SearchText() string { return b.CustomerName + " " + b.MobileNumber }

// Product is one catalog item in any of the three verticals.
type Product struct {
	ID              ID      `json:"id"`
	Name            string  `json:"name"`
	Vertical        string  `json:"vertical,omitempty"`
	CategoryName    string  `json:"category_name,omitempty"`
	StoreName       string  `json:"store_name,omitempty"`
	Price           float64 `json:"price"`
	OfferPrice      float64 `json:"offer_price,omitempty"`
	DiscountPercent int     `json:"discount_percentage,omitempty"`
	InStock         bool    `json:"is_available"`
	Image           string  `json:"image,omitempty"`
}

func (p Product) RowID() string { return p.ID.String() }
func (p Product) SearchText() string {
	return p.Name + " " + p.CategoryName + " " + p.StoreName
}

// Color is one fashion color swatch.
type Color struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hexcode"`
}

func (c Color) RowID() string      { return c.ID.String() }
func (c Color) SearchText() string { return c.Name + " " + c.Hex }

// CarouselAd is one home-screen carousel banner.
type CarouselAd struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	TargetURL string `json:"target_url,omitempty"`
	Position int    `json:"position"`
	Active   bool   `json:"is_active"`
}

func (a CarouselAd) RowID() string      { return a.ID.String() }
func (a CarouselAd) SearchText() string { return a.Title }

// SubAdmin is one restricted back-office principal. Its identity is the
// mobile number, not a numeric id.
type SubAdmin struct {
	MobileNumber string   `json:"mobile_number"`
	Name         string   `json:"name"`
	Email        string   `json:"email,omitempty"`
	Sections     []string `json:"allowed_sections"`
	Active       bool     `json:"is_active"`
}

func (s SubAdmin) RowID() string      { return s.MobileNumber }
func (s SubAdmin) SearchText() string { return s.Name + " " + s.MobileNumber + " " + s.Email }

// Customer is one shopper account.
type Customer struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email,omitempty"`
	Active       bool   `json:"is_active"`
	JoinedAt     string `json:"date_joined,omitempty"`
}

func (c Customer) RowID() string      { return c.ID.String() }
func (c Customer) SearchText() string { return c.Name + " " + c.MobileNumber + " " + c.Email }

// Notification is one push/broadcast message sent from the back office.
type Notification struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"description"`
	Audience string `json:"audience,omitempty"`
	SentAt   string `json:"created_at,omitempty"`
}

func (n Notification) RowID() string      { return n.ID.String() }
func (n Notification) SearchText() string { return n.Title + " " + n.Body }

// DeliveryAgent is one delivery staff member.
type DeliveryAgent struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
	City         string `json:"city,omitempty"`
	Active       bool   `json:"is_active"`
}

func (d DeliveryAgent) RowID() string      { return d.ID.String() }
func (d DeliveryAgent) SearchText() string { return d.Name + " " + d.MobileNumber + " " + d.City }

// ProductVertical names one of the three storefront catalogs.
type ProductVertical string

const (
	VerticalGrocery ProductVertical = "grocery"
	VerticalFood    ProductVertical = "food"
	VerticalFashion ProductVertical = "fashion"
)

// ParseVertical validates a vertical name from user input.
func ParseVertical(s string) (ProductVertical, bool) {
	switch ProductVertical(strings.ToLower(s)) {
	case VerticalGrocery:
		return VerticalGrocery, true
	case VerticalFood:
		return VerticalFood, true
	case VerticalFashion:
		return VerticalFashion, true
	}
	return "", false
}
